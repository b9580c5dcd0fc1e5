package usecase

import (
	"notification-client/internal/alert"
	"notification-client/internal/friend"
	"notification-client/pkg/log"
	"notification-client/pkg/pubsub"
)

type implRelay struct {
	logger    log.Logger
	repo      friend.Repository
	store     alert.Store
	labels    friend.Labels
	processed *pubsub.Topic[friend.FriendRequestProcessed]
}

// New creates the Action Relay. An empty label is localized per call from
// the request locale.
func New(logger log.Logger, repo friend.Repository, store alert.Store, labels friend.Labels) friend.Relay {
	return &implRelay{
		logger:    logger,
		repo:      repo,
		store:     store,
		labels:    labels,
		processed: pubsub.NewTopic[friend.FriendRequestProcessed](friend.TopicFriendRequestProcessed),
	}
}
