package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"blogsphere/internal/models"
)

const excerptLength = 155

var (
	markupTag  = regexp.MustCompile(`<[^>]+>`)
	whitespace = regexp.MustCompile(`\s+`)
)

// SuggestService produces writing suggestions from a draft. It is a local
// heuristic; no model is called.
type SuggestService interface {
	Suggest(title, content string) *models.Suggestions
}

type suggestService struct{}

func NewSuggestService() SuggestService {
	return &suggestService{}
}

func (s *suggestService) Suggest(title, content string) *models.Suggestions {
	plain := plainText(content)

	baseTitle := strings.TrimSpace(title)
	if baseTitle == "" {
		first, _, _ := strings.Cut(plain, ". ")
		baseTitle = truncateRunes(first, 60)
	}
	if baseTitle == "" {
		baseTitle = "A Fresh Perspective on Modern Development"
	}

	excerpt := plain
	if excerpt == "" {
		excerpt = "Share your story with a concise, engaging summary that hooks readers."
	}

	return &models.Suggestions{
		Titles: []string{
			baseTitle,
			"Lessons Learned: Building a Full-Stack Blog Platform",
			"From Idea to Release: Crafting a Blogging Experience",
		},
		Outlines: [][]string{
			{"Introduction and Motivation", "Key Challenges and Solutions", "Architecture Overview", "Results and Next Steps"},
			{"Problem Statement", "Tech Stack and Rationale", "Implementation Details", "Testing and Deployment"},
		},
		Excerpt: truncateRunes(excerpt, excerptLength),
	}
}

// plainText strips markup and collapses whitespace.
func plainText(content string) string {
	text := markupTag.ReplaceAllString(content, " ")
	text = whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
