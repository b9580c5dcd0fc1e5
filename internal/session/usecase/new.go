package usecase

import (
	"notification-client/internal/session"
	"notification-client/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	opts session.Options
}

func New(l log.Logger, opts session.Options) session.UseCase {
	if opts.LoginPath == "" {
		opts.LoginPath = session.DefaultLoginPath
	}
	if opts.LogoutPath == "" {
		opts.LogoutPath = session.DefaultLogoutPath
	}
	return &implUseCase{l: l, opts: opts}
}
