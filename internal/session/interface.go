package session

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Login authenticates against the upstream API and returns a session
	// whose client carries the issued cookie.
	Login(ctx context.Context, creds Credentials) (*Session, error)
	// Logout tells the upstream API to drop the session. Best effort: the
	// session must be discarded whatever the result.
	Logout(ctx context.Context, s *Session) error
}
