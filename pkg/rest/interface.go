package rest

import (
	"context"
	"net/http"
)

// IClient issues JSON requests against the upstream REST API.
type IClient interface {
	// Do sends body (if any) as JSON and decodes a 2xx answer into out (if
	// any). Any other status returns a *errors.RequestError.
	Do(ctx context.Context, method, path string, body, out any) error
	BaseURL() string
	HTTPClient() *http.Client
}
