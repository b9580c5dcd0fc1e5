package coordinator

import "errors"

var (
	ErrNilSession = errors.New("coordinator requires a session")
	ErrStopped    = errors.New("coordinator stopped")
)
