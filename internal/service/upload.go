package service

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"

	"blogsphere/internal/apperror"
)

type sniffedImage struct {
	reader      io.Reader
	contentType string
	fileName    string
}

// sniffImage checks size and content of an upload. The returned reader
// replays the bytes consumed by detection.
func sniffImage(fileName string, file io.Reader, size, maxSize int64) (*sniffedImage, error) {
	if size <= 0 {
		return nil, apperror.Validation("empty upload")
	}
	if maxSize > 0 && size > maxSize {
		return nil, apperror.Validation("file is %s, limit is %s",
			humanize.Bytes(uint64(size)), humanize.Bytes(uint64(maxSize)))
	}

	var head bytes.Buffer
	mtype, err := mimetype.DetectReader(io.TeeReader(file, &head))
	if err != nil {
		return nil, apperror.Validation("unreadable upload: %v", err)
	}

	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, apperror.Validation("unsupported file type %s", mtype.String())
	}

	if filepath.Ext(fileName) == "" {
		fileName += mtype.Extension()
	}

	return &sniffedImage{
		reader:      io.MultiReader(&head, file),
		contentType: mtype.String(),
		fileName:    fileName,
	}, nil
}
