package jwt

import "errors"

var (
	ErrNoToken        = errors.New("jwt: no session token cookie")
	ErrMissingSubject = errors.New("jwt: missing or invalid 'sub' claim")
)
