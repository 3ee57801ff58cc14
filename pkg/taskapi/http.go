package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newRequest creates a new HTTP request for the given API path.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return req, nil
}

// newJSONRequest creates a new HTTP request with a compact JSON body.
func (c *Client) newJSONRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	// json.Marshal rather than an Encoder: no trailing newline on the wire.
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// do sends req and collapses transport failures and non-ok responses into
// an *Error of the given kind. On success the caller owns resp.Body.
func (c *Client) do(req *http.Request, kind ErrorKind) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.V(1).Info("request failed", "method", req.Method, "path", req.URL.Path, "error", err.Error())
		return nil, newError(kind, 0, err)
	}

	c.log.V(1).Info("request", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)

	if !isOK(resp) {
		resp.Body.Close()
		return nil, newError(kind, resp.StatusCode, nil)
	}

	return resp, nil
}

// isOK reports whether the response status is 2xx.
func isOK(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// taskPath returns the path of a single task. The ID is not escaped.
func taskPath(id string) string {
	return TasksPath + "/" + id
}
