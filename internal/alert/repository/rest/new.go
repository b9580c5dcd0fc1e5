package rest

import (
	"notification-client/internal/alert"
	"notification-client/pkg/log"
	pkgRest "notification-client/pkg/rest"
)

type implRepository struct {
	client pkgRest.IClient
	logger log.Logger
}

// New returns an alert.Repository over the session's REST client.
func New(logger log.Logger, client pkgRest.IClient) alert.Repository {
	return &implRepository{client: client, logger: logger}
}
