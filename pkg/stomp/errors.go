package stomp

import "errors"

var (
	ErrMissingCommand   = errors.New("stomp: missing command")
	ErrMalformedHeader  = errors.New("stomp: malformed header")
	ErrUnterminated     = errors.New("stomp: frame not terminated by NULL")
	ErrBadContentLength = errors.New("stomp: bad content-length")
	ErrBadHeartBeat     = errors.New("stomp: bad heart-beat header")
)
