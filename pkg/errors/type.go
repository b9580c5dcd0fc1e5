package errors

// HTTPError is returned by the local view API with an explicit status code.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// ValidationError reports an invalid field in a view API request.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// RequestError is a non-2xx answer from the upstream REST API.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}
