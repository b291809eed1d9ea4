package state

import "blogsphere/internal/models"

// Thread is the comment tree of one post as shown to the reader.
type Thread struct {
	PostID string
	Nodes  []models.CommentNode
}

func NewThread(postID string, nodes []models.CommentNode) Thread {
	return Thread{PostID: postID, Nodes: cloneNodes(nodes)}
}

// Add places a new comment: a top-level comment goes first, a reply goes
// last under its parent. Comments for other posts or unknown parents are
// ignored.
func (t Thread) Add(c models.Comment) Thread {
	if c.PostID != t.PostID {
		return t
	}

	if c.IsTopLevel() {
		nodes := make([]models.CommentNode, 0, len(t.Nodes)+1)
		nodes = append(nodes, models.CommentNode{Comment: c, Replies: []models.Comment{}})
		nodes = append(nodes, cloneNodes(t.Nodes)...)
		return Thread{PostID: t.PostID, Nodes: nodes}
	}

	nodes := cloneNodes(t.Nodes)
	for i := range nodes {
		if c.IsReplyTo(nodes[i].ID) {
			nodes[i].Replies = append(nodes[i].Replies, c)
			return Thread{PostID: t.PostID, Nodes: nodes}
		}
	}
	return t
}

// Replace swaps in an edited comment wherever it sits.
func (t Thread) Replace(c models.Comment) Thread {
	nodes := cloneNodes(t.Nodes)
	for i := range nodes {
		if nodes[i].ID == c.ID {
			nodes[i].Comment = c
			break
		}
		for j := range nodes[i].Replies {
			if nodes[i].Replies[j].ID == c.ID {
				nodes[i].Replies[j] = c
			}
		}
	}
	return Thread{PostID: t.PostID, Nodes: nodes}
}

// Remove drops a comment. Removing a top-level comment drops its replies too.
func (t Thread) Remove(commentID string) Thread {
	nodes := make([]models.CommentNode, 0, len(t.Nodes))
	for _, n := range t.Nodes {
		if n.ID == commentID {
			continue
		}

		replies := make([]models.Comment, 0, len(n.Replies))
		for _, r := range n.Replies {
			if r.ID != commentID {
				replies = append(replies, r)
			}
		}
		n.Replies = replies
		nodes = append(nodes, n)
	}
	return Thread{PostID: t.PostID, Nodes: nodes}
}

// Count is the number of comments in the thread, replies included.
func (t Thread) Count() int {
	n := len(t.Nodes)
	for _, node := range t.Nodes {
		n += len(node.Replies)
	}
	return n
}

func cloneNodes(nodes []models.CommentNode) []models.CommentNode {
	out := make([]models.CommentNode, len(nodes))
	for i, n := range nodes {
		out[i] = n
		out[i].Replies = append([]models.Comment{}, n.Replies...)
	}
	return out
}
