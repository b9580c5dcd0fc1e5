package middleware

import (
	"notification-client/pkg/locale"
	"notification-client/pkg/log"
)

type Middleware struct {
	l           log.Logger
	defaultLang string
}

func New(l log.Logger, defaultLang string) Middleware {
	return Middleware{
		l:           l,
		defaultLang: locale.ParseLang(defaultLang),
	}
}
