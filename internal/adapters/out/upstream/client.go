// Package upstream implements the outbound adapters that talk to the retail
// platform's partner API. Every response arrives in a uniform envelope of
// success flag, human-readable message, and payload; the adapter unwraps the
// envelope and translates payloads into domain objects at the boundary.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"partnerconsole/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// envelope is the wire shape of every platform response.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client carries the shared HTTP plumbing for the platform adapters.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a platform client rooted at baseURL.
// A non-positive timeout falls back to the default.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// response couples the decoded envelope with the HTTP status so operations
// can apply their own error mapping.
type response struct {
	status   int
	envelope envelope
}

// do executes one platform call. A non-empty accessToken rides along as a
// bearer credential. Transport failures map to ports.NetworkError; an
// undecodable body maps to ports.MalformedResponseError. Status mapping is
// left to the caller.
func (c *Client) do(ctx context.Context, method, path, accessToken string, body any) (response, error) {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return response{}, fmt.Errorf("encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return response{}, fmt.Errorf("build %s request: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response{}, &ports.NetworkError{Op: op, Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, &ports.NetworkError{Op: op, Cause: err}
	}

	var env envelope
	if len(raw) > 0 {
		if err = json.Unmarshal(raw, &env); err != nil {
			return response{}, &ports.MalformedResponseError{Op: op, Cause: err}
		}
	}

	c.logger.Debug().
		Str("op", op).
		Int("status", resp.StatusCode).
		Bool("success", env.Success).
		Msg("platform call")

	return response{status: resp.StatusCode, envelope: env}, nil
}

// mapCommonError applies the error mapping shared by all authenticated
// operations: 401 means the token is dead, any other failure is reported
// with the server's own message.
func mapCommonError(op string, resp response) error {
	if resp.status == http.StatusUnauthorized {
		return ports.ErrSessionExpired
	}
	if resp.status >= 400 || !resp.envelope.Success {
		return &ports.ServerError{Status: resp.status, Message: resp.envelope.Message}
	}
	return nil
}
