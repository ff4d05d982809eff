package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/filebox/filebox/internal/common"
	"github.com/filebox/filebox/internal/logging"
)

// TokenProvider hands out the current bearer credential, or "" when the
// client is anonymous.
type TokenProvider interface {
	Token() string
}

// Client issues requests against the backend base URL. Construct one at the
// composition root and hand it to the domain modules; it holds no state
// beyond transport configuration.
type Client struct {
	http *resty.Client
	log  logging.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider, log logging.Logger) *Client {
	r := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	// Interceptor: attach the credential to every outgoing request.
	// JSON and multipart content types are handled by resty itself.
	r.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if t := tokens.Token(); t != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+t)
		}
		return nil
	})

	return &Client{http: r, log: log.With("component", "api")}
}

// Get issues a GET request and normalizes the response.
func Get[T any](ctx context.Context, c *Client, path string) Result[T] {
	return do[T](ctx, c, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body.
func Post[T any](ctx context.Context, c *Client, path string, body any) Result[T] {
	return do[T](ctx, c, http.MethodPost, path, body)
}

// Delete issues a DELETE request.
func Delete[T any](ctx context.Context, c *Client, path string) Result[T] {
	return do[T](ctx, c, http.MethodDelete, path, nil)
}

// Upload issues a multipart POST with the file under the backend's expected
// field name. The multipart boundary content type is left to the transport.
func Upload[T any](ctx context.Context, c *Client, path, filename string, r io.Reader) Result[T] {
	req := c.http.R().
		SetContext(ctx).
		SetFileReader(common.UploadFieldName, filename, r)

	resp, err := req.Execute(http.MethodPost, path)
	return normalize[T](c, resp, err)
}

func do[T any](ctx context.Context, c *Client, method, path string, body any) Result[T] {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	return normalize[T](c, resp, err)
}
