package usecase

import (
	"sync"

	ws "notification-client/internal/websocket"
)

// stateMachine holds the connection state and notifies listeners in order.
type stateMachine struct {
	// notifyMu keeps listener calls in transition order.
	notifyMu  sync.Mutex
	mu        sync.Mutex
	state     ws.State
	listeners []ws.StateListener
	observe   func(ws.State)
}

func newStateMachine(observe func(ws.State)) *stateMachine {
	observe(ws.StateIdle)
	return &stateMachine{state: ws.StateIdle, observe: observe}
}

func (s *stateMachine) get() ws.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// set moves to the given state. Closed is terminal.
func (s *stateMachine) set(to ws.State) bool {
	return s.transition(to, func(from ws.State) bool {
		return from != to && from != ws.StateClosed
	})
}

func (s *stateMachine) transition(to ws.State, allowed func(from ws.State) bool) bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	from := s.state
	if !allowed(from) {
		s.mu.Unlock()
		return false
	}
	s.state = to
	listeners := append([]ws.StateListener(nil), s.listeners...)
	s.mu.Unlock()

	s.observe(to)
	for _, fn := range listeners {
		fn(from, to)
	}
	return true
}

func (s *stateMachine) listen(fn ws.StateListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
