package redis

import (
	"context"
	"encoding/json"
	"fmt"
)

func (r *redisImpl) Publish(ctx context.Context, channel string, message any) error {
	if message == nil {
		return ErrNilMessage
	}
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return r.client.Publish(ctx, r.prefix+channel, data).Err()
}

func (r *redisImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisImpl) Close() error {
	return r.client.Close()
}
