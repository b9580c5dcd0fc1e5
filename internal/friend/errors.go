package friend

import "errors"

var (
	ErrInvalidAction = errors.New("invalid friend request action")
	ErrRespondFailed = errors.New("failed to answer friend request")
)
