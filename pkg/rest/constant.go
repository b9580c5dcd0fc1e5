package rest

import "time"

const (
	DefaultTimeout = 15 * time.Second
	UserAgent      = "notification-client/1.0"
)
