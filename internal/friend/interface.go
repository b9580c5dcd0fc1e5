package friend

import (
	"context"

	"notification-client/pkg/pubsub"
)

// Repository is the friend-request REST API.
type Repository interface {
	Respond(ctx context.Context, requestID int64, action Action) error
}

// Relay executes friend-request actions taken from the alert feed.
type Relay interface {
	// HandleFriendRequest answers the request, marks the alert processed and
	// publishes FriendRequestProcessed. Nothing is mutated on failure.
	HandleFriendRequest(ctx context.Context, requestID, alertID int64, action Action) error
	// Processed is the topic carrying FriendRequestProcessed events.
	Processed() *pubsub.Topic[FriendRequestProcessed]
}
