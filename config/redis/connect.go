package redis

import (
	"fmt"

	"notification-client/config"
	pkgRedis "notification-client/pkg/redis"
)

// Connect returns the event mirror client, or nil when the mirror is disabled.
func Connect(cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	client, err := pkgRedis.New(pkgRedis.RedisConfig{
		Host:          cfg.Host,
		Port:          cfg.Port,
		Password:      cfg.Password,
		DB:            cfg.DB,
		ChannelPrefix: cfg.ChannelPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
