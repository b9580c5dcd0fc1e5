package stomp

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HeartBeat is a heart-beat header value: Send is the smallest interval at
// which the sender can beat, Receive the interval it wants to receive beats.
type HeartBeat struct {
	Send    time.Duration
	Receive time.Duration
}

func (h HeartBeat) String() string {
	return fmt.Sprintf("%d,%d", h.Send.Milliseconds(), h.Receive.Milliseconds())
}

// ParseHeartBeat parses "cx,cy". An empty value means no heart-beating.
func ParseHeartBeat(v string) (HeartBeat, error) {
	if strings.TrimSpace(v) == "" {
		return HeartBeat{}, nil
	}
	a, b, ok := strings.Cut(v, ",")
	if !ok {
		return HeartBeat{}, ErrBadHeartBeat
	}
	x, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil || x < 0 {
		return HeartBeat{}, ErrBadHeartBeat
	}
	y, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil || y < 0 {
		return HeartBeat{}, ErrBadHeartBeat
	}
	return HeartBeat{Send: time.Duration(x) * time.Millisecond, Receive: time.Duration(y) * time.Millisecond}, nil
}

// Negotiate returns the intervals at which the client must send beats and
// expects to receive them, given its own offer and the server's answer.
// Zero disables the direction.
func Negotiate(client, server HeartBeat) (send, receive time.Duration) {
	if client.Send > 0 && server.Receive > 0 {
		send = max(client.Send, server.Receive)
	}
	if client.Receive > 0 && server.Send > 0 {
		receive = max(client.Receive, server.Send)
	}
	return send, receive
}
