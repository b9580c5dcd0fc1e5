package rest

import (
	"context"
	"fmt"
	"net/http"

	"notification-client/internal/friend"
	pkgRest "notification-client/pkg/rest"
)

const friendRequestPath = "/api/v1/friends/friend-requests/%d/%s"

type implRepository struct {
	client pkgRest.IClient
}

// New returns a friend.Repository over the session's REST client.
func New(client pkgRest.IClient) friend.Repository {
	return &implRepository{client: client}
}

func (r *implRepository) Respond(ctx context.Context, requestID int64, action friend.Action) error {
	if !action.Valid() {
		return friend.ErrInvalidAction
	}
	return r.client.Do(ctx, http.MethodPost, fmt.Sprintf(friendRequestPath, requestID, action), nil, nil)
}
