package rest

import "errors"

var errBaseURLRequired = errors.New("rest: base URL is required")
