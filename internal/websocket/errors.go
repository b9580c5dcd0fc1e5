package websocket

import "errors"

var (
	ErrAlreadyStarted   = errors.New("push connection already started")
	ErrClosed           = errors.New("push connection closed")
	ErrMissingUserID    = errors.New("push connection requires a user id")
	ErrMissingURL       = errors.New("push connection requires a broker URL")
	ErrHandshakeFailed  = errors.New("stomp handshake failed")
	ErrServerError      = errors.New("broker sent an ERROR frame")
	ErrHeartbeatTimeout = errors.New("no heart-beat from broker")
)
