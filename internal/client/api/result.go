package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Result is the uniform outcome of every backend call. Exactly one of
// Data/Error is meaningful: Data on success, Error on failure. Status mirrors
// the HTTP status code, with 0 denoting a transport-level failure where no
// response was received.
type Result[T any] struct {
	Status int
	Data   *T
	Error  string
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool {
	return r.Error == "" && r.Status >= 200 && r.Status < 400
}

// Unauthorized reports whether the backend rejected the credential.
func (r Result[T]) Unauthorized() bool {
	return r.Status == http.StatusUnauthorized
}

// NoContent is the payload type for calls whose success body is empty.
type NoContent struct{}

// envelope is the server response wrapper. Unwrapping is structural: one
// level, and only when the data member is present.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func normalize[T any](c *Client, resp *resty.Response, err error) Result[T] {
	if err != nil {
		c.log.Warn(context.Background(), "transport failure", "err", err)
		return Result[T]{Status: 0, Error: err.Error()}
	}

	status := resp.StatusCode()
	body := resp.Body()

	if status >= 400 {
		return Result[T]{Status: status, Error: errorMessage(status, body)}
	}

	data, derr := decodePayload[T](body)
	if derr != nil {
		return Result[T]{Status: status, Error: fmt.Sprintf("decode response: %v", derr)}
	}
	return Result[T]{Status: status, Data: data}
}

// decodePayload unmarshals a success body into T, unwrapping the envelope
// when its data member is present. Empty bodies decode to the zero value.
func decodePayload[T any](body []byte) (*T, error) {
	out := new(T)

	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, err
		}
		return out, nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return nil, err
	}
	return out, nil
}

// errorMessage extracts the server's message or error field from a failure
// body, falling back to a generated message.
func errorMessage(status int, body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Message != "" {
			return env.Message
		}
		if env.Error != "" {
			return env.Error
		}
	}
	return fmt.Sprintf("HTTP Error %d", status)
}
