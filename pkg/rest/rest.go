package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgErrors "notification-client/pkg/errors"
)

type clientImpl struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient builds the cookie-carrying client shared by a session.
func NewHTTPClient(jar http.CookieJar, timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Jar:     jar,
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// New creates an IClient rooted at baseURL. A nil client gets
// NewHTTPClient(nil, DefaultTimeout).
func New(baseURL string, client *http.Client) (IClient, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, errBaseURLRequired
	}
	if client == nil {
		client = NewHTTPClient(nil, DefaultTimeout)
	}
	return &clientImpl{baseURL: baseURL, client: client}, nil
}

func (c *clientImpl) BaseURL() string {
	return c.baseURL
}

func (c *clientImpl) HTTPClient() *http.Client {
	return c.client
}

func (c *clientImpl) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, pkgErrors.MaxRequestErrorBody))
		return pkgErrors.NewRequestError(method, path, resp.StatusCode, data)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
