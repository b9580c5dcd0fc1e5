package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Local view API and logging
	Server ServerConfig
	Logger LoggerConfig

	// Upstream endpoints
	API  APIConfig
	Push PushConfig

	// Feed presentation
	Toast  ToastConfig
	Labels LabelsConfig

	// Event mirror
	Redis RedisConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServerConfig is the configuration for the local view API.
type ServerConfig struct {
	Host           string
	Port           int
	Mode           string
	AllowedOrigins []string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// APIConfig locates the upstream REST API and its login flow.
type APIConfig struct {
	BaseURL      string
	LoginPath    string
	LogoutPath   string
	TokenCookies []string
	Timeout      time.Duration
}

// PushConfig is the configuration for the STOMP push channel.
type PushConfig struct {
	URL               string
	ReconnectDelay    time.Duration
	HeartbeatOutgoing time.Duration
	HeartbeatIncoming time.Duration
	HandshakeTimeout  time.Duration
	WriteWait         time.Duration
	MaxMessageSize    int64
}

// ToastConfig is the configuration for the toast slot. Zero TTL keeps a toast
// until it is dismissed.
type ToastConfig struct {
	TTL time.Duration
}

// LabelsConfig overrides the processed-action labels. Empty labels are
// localized from the request language, Lang being the fallback.
type LabelsConfig struct {
	Accepted string
	Rejected string
	Lang     string
}

// RedisConfig is the configuration for the optional event mirror.
type RedisConfig struct {
	Enabled       bool
	Host          string
	Port          int
	Password      string
	DB            int
	ChannelPrefix string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("client-config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/notification-client/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// Read config file (optional - will use env vars if file not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = v.GetString("environment.name")

	// Server
	cfg.Server.Host = v.GetString("server.host")
	cfg.Server.Port = v.GetInt("server.port")
	cfg.Server.Mode = v.GetString("server.mode")
	cfg.Server.AllowedOrigins = v.GetStringSlice("server.allowed_origins")

	// Logger
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// API
	cfg.API.BaseURL = v.GetString("api.base_url")
	cfg.API.LoginPath = v.GetString("api.login_path")
	cfg.API.LogoutPath = v.GetString("api.logout_path")
	cfg.API.TokenCookies = v.GetStringSlice("api.token_cookies")
	cfg.API.Timeout = v.GetDuration("api.timeout")

	// Push
	cfg.Push.URL = v.GetString("push.url")
	cfg.Push.ReconnectDelay = v.GetDuration("push.reconnect_delay")
	cfg.Push.HeartbeatOutgoing = v.GetDuration("push.heartbeat_outgoing")
	cfg.Push.HeartbeatIncoming = v.GetDuration("push.heartbeat_incoming")
	cfg.Push.HandshakeTimeout = v.GetDuration("push.handshake_timeout")
	cfg.Push.WriteWait = v.GetDuration("push.write_wait")
	cfg.Push.MaxMessageSize = v.GetInt64("push.max_message_size")

	// Toast & labels
	cfg.Toast.TTL = v.GetDuration("toast.ttl")
	cfg.Labels.Accepted = v.GetString("labels.accepted")
	cfg.Labels.Rejected = v.GetString("labels.rejected")
	cfg.Labels.Lang = v.GetString("labels.lang")

	// Redis
	cfg.Redis.Enabled = v.GetBool("redis.enabled")
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.ChannelPrefix = v.GetString("redis.channel_prefix")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// Server
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)

	// API
	v.SetDefault("api.login_path", "/api/v1/auth/login")
	v.SetDefault("api.logout_path", "/api/v1/auth/logout")
	v.SetDefault("api.timeout", 15*time.Second)

	// Push
	v.SetDefault("push.reconnect_delay", 5*time.Second)
	v.SetDefault("push.heartbeat_outgoing", 4*time.Second)
	v.SetDefault("push.heartbeat_incoming", 4*time.Second)
	v.SetDefault("push.handshake_timeout", 10*time.Second)
	v.SetDefault("push.write_wait", 10*time.Second)
	v.SetDefault("push.max_message_size", 1<<20)

	// Labels
	v.SetDefault("labels.lang", "en")

	// Redis
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel_prefix", "notification-client:")
}

func validate(cfg *Config) error {
	// Validate API
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}

	// Validate Push
	if cfg.Push.URL == "" {
		return fmt.Errorf("push.url is required")
	}
	u, err := url.Parse(cfg.Push.URL)
	if err != nil || (u.Scheme != "ws" && u.Scheme != "wss") {
		return fmt.Errorf("push.url must be a ws:// or wss:// URL")
	}

	// Validate Server
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	// Validate Redis
	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required")
		}
	}

	return nil
}
