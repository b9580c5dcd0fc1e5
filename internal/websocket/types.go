package websocket

import (
	"fmt"
	"net/http"
	"time"
)

// State is the connection lifecycle state.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateConnected
	StateDisconnected
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateDisconnected:
		return "disconnected"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type StateListener func(from, to State)

// Default timings of the push channel.
const (
	DefaultReconnectDelay   = 5 * time.Second
	DefaultHeartbeat        = 4 * time.Second
	DefaultHandshakeTimeout = 10 * time.Second
	DefaultWriteWait        = 10 * time.Second
)

// Config configures a Manager. Zero durations take the defaults above.
type Config struct {
	// URL is the broker WebSocket endpoint, e.g. ws://host/ws.
	URL    string
	UserID string
	// Jar supplies the session cookie for the handshake request.
	Jar    http.CookieJar
	Header http.Header

	ReconnectDelay    time.Duration
	HeartbeatOutgoing time.Duration
	HeartbeatIncoming time.Duration
	HandshakeTimeout  time.Duration
	WriteWait         time.Duration
	MaxMessageSize    int64
}

// Kind tells which logical channel a message arrived on.
type Kind string

const (
	KindAlert Kind = "alert"
	KindToast Kind = "toast"
)

// AlertDestination is the durable-alert queue of a user.
func AlertDestination(userID string) string {
	return fmt.Sprintf("/user/%s/queue/alerts", userID)
}

// ToastDestination is the toast queue of a user.
func ToastDestination(userID string) string {
	return fmt.Sprintf("/user/%s/queue/toast-alerts", userID)
}
