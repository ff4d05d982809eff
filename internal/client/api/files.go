package api

import (
	"context"
	"io"

	"github.com/filebox/filebox/internal/client/models"
)

// UploadResponse is the record the backend returns for a stored file. The
// flows never insert it into local state directly; they refetch the list so
// local state always reflects the server's ordering.
type UploadResponse struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	URL      string `json:"url,omitempty"`
}

// Files is the narrow surface over the backend's files resource.
type Files interface {
	List(ctx context.Context) Result[[]models.FileRecord]
	Upload(ctx context.Context, filename string, r io.Reader) Result[UploadResponse]
	Delete(ctx context.Context, id string) Result[NoContent]
}

type restFiles struct {
	c *Client
}

// NewFiles returns the REST implementation of Files over the given client.
func NewFiles(c *Client) Files {
	return &restFiles{c: c}
}

func (f *restFiles) List(ctx context.Context) Result[[]models.FileRecord] {
	return Get[[]models.FileRecord](ctx, f.c, "/files")
}

func (f *restFiles) Upload(ctx context.Context, filename string, r io.Reader) Result[UploadResponse] {
	return Upload[UploadResponse](ctx, f.c, "/files/upload", filename, r)
}

func (f *restFiles) Delete(ctx context.Context, id string) Result[NoContent] {
	return Delete[NoContent](ctx, f.c, "/files/"+id)
}
