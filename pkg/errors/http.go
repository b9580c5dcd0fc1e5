package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// NewHTTPError returns a new HTTPError. A zero statusCode means 400.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{Code: code, Message: message, StatusCode: statusCode}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error.
func NewValidationError(code int, field string, messages ...string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Messages: messages}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, ", "))
}

// MaxRequestErrorBody caps the upstream body kept on a RequestError.
const MaxRequestErrorBody = 256

// NewRequestError builds a RequestError from a failed upstream call. The body
// is cut to MaxRequestErrorBody bytes without leaving a partial rune.
func NewRequestError(method, path string, statusCode int, body []byte) *RequestError {
	b := string(body)
	if len(b) > MaxRequestErrorBody {
		b = b[:MaxRequestErrorBody]
	}
	b = strings.ToValidUTF8(b, "")
	return &RequestError{Method: method, Path: path, StatusCode: statusCode, Body: b}
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.Path, e.StatusCode)
}

// IsStatus reports whether err is a RequestError carrying the given status.
func IsStatus(err error, status int) bool {
	var re *RequestError
	return stderrors.As(err, &re) && re.StatusCode == status
}
