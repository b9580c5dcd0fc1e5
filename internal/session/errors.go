package session

import "errors"

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrLoginFailed        = errors.New("login failed")
	ErrNoUserID           = errors.New("login response carried no user id")
)
