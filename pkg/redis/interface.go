package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// IRedis is the subset of Redis used to mirror client events to other processes.
type IRedis interface {
	Publish(ctx context.Context, channel string, message any) error
	Ping(ctx context.Context) error
	Close() error
}

// New connects to Redis and verifies the connection with a ping.
func New(cfg RedisConfig) (IRedis, error) {
	if cfg.Host == "" {
		return nil, ErrHostRequired
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, ErrInvalidPort
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisImpl{client: client, prefix: cfg.ChannelPrefix}, nil
}
