package http

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/conectajovem/platform/internal/api/respond"
)

// maxUploadBytes bounds a single uploaded file.
const maxUploadBytes = 32 << 20

// UploadHandler stores uploaded files on local disk and serves them
// back under /files/. It stands in for the hosted upload collaborator.
type UploadHandler struct {
	dir     string
	baseURL string
}

func NewUploadHandler(dir, baseURL string) *UploadHandler {
	return &UploadHandler{dir: dir, baseURL: baseURL}
}

// Upload POST /api/uploads (multipart, field "file") -> {"file_url": ...}
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		respond.WriteBadRequest(w, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	name := uuid.New().String() + "_" + filepath.Base(header.Filename)
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		log.Error().Err(err).Str("file", name).Msg("upload write failed")
		respond.WriteInternalError(w, err.Error())
		return
	}

	respond.WriteJSON(w, http.StatusCreated, map[string]string{
		"file_url": fmt.Sprintf("%s/files/%s", h.baseURL, name),
	})
}

// Files returns the handler serving stored files under /files/.
func (h *UploadHandler) Files() http.Handler {
	return http.StripPrefix("/files/", http.FileServer(http.Dir(h.dir)))
}
