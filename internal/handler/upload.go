package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/dustin/go-humanize"
)

const multipartOverhead = 1 << 20

// formFile reads a single multipart file field, bounded by MaxUploadSize.
func (h *Handlers) formFile(w http.ResponseWriter, r *http.Request, field string) (multipart.File, *multipart.FileHeader, bool) {
	limit := h.Cfg.MaxUploadSize
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	if err := r.ParseMultipartForm(limit); err != nil {
		WriteError(w, "upload must be multipart and at most "+humanize.Bytes(uint64(limit)), http.StatusBadRequest)
		return nil, nil, false
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		WriteError(w, "missing file field "+field, http.StatusBadRequest)
		return nil, nil, false
	}

	return file, header, true
}
