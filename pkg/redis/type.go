package redis

import goredis "github.com/redis/go-redis/v9"

// RedisConfig configures the event mirror connection. ChannelPrefix is
// prepended to every channel published on.
type RedisConfig struct {
	Host          string
	Port          int
	Password      string
	DB            int
	ChannelPrefix string
}

type redisImpl struct {
	client *goredis.Client
	prefix string
}
