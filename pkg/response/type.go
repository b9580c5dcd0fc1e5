package response

import "notification-client/pkg/errors"

// Resp is the envelope of every view API answer.
type Resp struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// ErrorMapping maps sentinel errors to the answer given for them.
type ErrorMapping map[error]*errors.HTTPError
