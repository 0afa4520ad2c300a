package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"consigne-admin/internal/core/domain"

	"github.com/google/uuid"
)

// Client is the typed HTTP client for the remote lending API. It shapes
// requests and responses and maps failure classes to domain errors; all
// business rules live in the services.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a gateway client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// StatusError carries a non-2xx response status for callers that map
// specific codes (409 on partial return, 400 on date-range stats).
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote API returned status %d", e.Code)
}

// do performs one request against the remote API. A nil out discards the
// response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapErr translates a StatusError to the generic domain taxonomy. Callers
// with endpoint-specific codes handle those before falling back here.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if se, ok := statusOf(err); ok {
		switch {
		case se.Code == http.StatusNotFound:
			return domain.ErrNotFound
		case se.Code == http.StatusBadRequest:
			return domain.ErrInvalidInput
		case se.Code == http.StatusUnauthorized, se.Code == http.StatusForbidden:
			return domain.ErrUnauthorized
		case se.Code >= 500:
			return domain.ErrInternalServer
		}
	}
	return err
}

func statusOf(err error) (*StatusError, bool) {
	se, ok := err.(*StatusError)
	return se, ok
}
