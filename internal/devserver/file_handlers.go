package devserver

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/filebox/filebox/internal/common"
)

// maxUploadBytes caps dev uploads; everything is held in memory.
const maxUploadBytes = 32 << 20

type fileResponse struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploadedAt"`
	URL        string `json:"url"`
}

func toFileResponse(f *fileEntry) fileResponse {
	return fileResponse{
		ID:         f.ID,
		Filename:   f.Filename,
		Size:       f.Size,
		UploadedAt: f.UploadedAt.Format(time.RFC3339),
		URL:        fmt.Sprintf("/files/%s/download", f.ID),
	}
}

func (s *Server) handleListFiles(c *gin.Context) {
	files := s.store.filesForOwner(c.GetString(userIDKey))

	out := make([]fileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, toFileResponse(f))
	}
	respond(c, http.StatusOK, out)
}

func (s *Server) handleUpload(c *gin.Context) {
	header, err := c.FormFile(common.UploadFieldName)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Missing file field")
		return
	}
	if header.Size > maxUploadBytes {
		respondError(c, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	f, err := header.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Unreadable upload")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Reading upload failed")
		return
	}

	entry := s.store.addFile(c.GetString(userIDKey), header.Filename, data)
	s.log.Info(c.Request.Context(), "stored file", "id", entry.ID, "name", entry.Filename, "size", entry.Size)

	respond(c, http.StatusCreated, toFileResponse(entry))
}

func (s *Server) handleDownload(c *gin.Context) {
	f, err := s.store.fileForOwner(c.GetString(userIDKey), c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "File not found")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Filename))
	c.Data(http.StatusOK, "application/octet-stream", f.Data)
}

func (s *Server) handleDeleteFile(c *gin.Context) {
	if err := s.store.deleteFile(c.GetString(userIDKey), c.Param("id")); err != nil {
		respondError(c, http.StatusNotFound, "File not found")
		return
	}
	c.Status(http.StatusNoContent)
}
