package redis

import (
	"context"

	"notification-client/pkg/log"
	"notification-client/pkg/pubsub"
	pkgRedis "notification-client/pkg/redis"
)

type publisher struct {
	redis  pkgRedis.IRedis
	logger log.Logger
}

// New returns a pubsub.Sink mirroring broadcast events to Redis channels
// named after their topic.
func New(redis pkgRedis.IRedis, logger log.Logger) pubsub.Sink {
	return &publisher{redis: redis, logger: logger}
}

func (p *publisher) Publish(ctx context.Context, topic string, payload any) error {
	if err := p.redis.Publish(ctx, topic, payload); err != nil {
		p.logger.Warnf(ctx, "internal.friend.delivery.redis.Publish: topic=%s: %v", topic, err)
		return err
	}
	return nil
}
