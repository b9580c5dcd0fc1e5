package usecase

import (
	"context"
	"fmt"

	"notification-client/internal/friend"
	"notification-client/internal/model"
	"notification-client/pkg/locale"
	"notification-client/pkg/pubsub"
)

func (r *implRelay) Processed() *pubsub.Topic[friend.FriendRequestProcessed] {
	return r.processed
}

func (r *implRelay) HandleFriendRequest(ctx context.Context, requestID, alertID int64, action friend.Action) error {
	if !action.Valid() {
		return friend.ErrInvalidAction
	}

	if err := r.repo.Respond(ctx, requestID, action); err != nil {
		r.logger.Errorf(ctx, "internal.friend.usecase.HandleFriendRequest: request=%d action=%s: %v", requestID, action, err)
		return fmt.Errorf("%w: %w", friend.ErrRespondFailed, err)
	}

	if !r.store.ApplyProcessedAction(alertID, r.label(ctx, action)) {
		r.logger.Debugf(ctx, "internal.friend.usecase.HandleFriendRequest: alert %d absent or already processed", alertID)
	}

	event := friend.FriendRequestProcessed{RequestID: requestID, Action: action}
	if err := r.processed.Publish(ctx, event); err != nil {
		r.logger.Warnf(ctx, "internal.friend.usecase.HandleFriendRequest: broadcast: %v", err)
	}
	return nil
}

func (r *implRelay) label(ctx context.Context, action friend.Action) model.ProcessedAction {
	if l := r.labels.For(action); l != "" {
		return l
	}
	return friend.LocalizedLabels(locale.GetLang(ctx)).For(action)
}
