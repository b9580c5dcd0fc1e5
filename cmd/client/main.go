package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"notification-client/config"
	configRedis "notification-client/config/redis"
	"notification-client/internal/coordinator"
	"notification-client/internal/friend"
	friendRedis "notification-client/internal/friend/delivery/redis"
	"notification-client/internal/httpserver"
	"notification-client/internal/model"
	"notification-client/internal/session"
	sessionUC "notification-client/internal/session/usecase"
	"notification-client/internal/toast"
	ws "notification-client/internal/websocket"
	wsUC "notification-client/internal/websocket/usecase"
	"notification-client/pkg/log"
	"notification-client/pkg/pubsub"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}
	creds, err := config.LoadCredentials()
	if err != nil {
		fmt.Println("Failed to load credentials:", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting notification client...")

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	pushMetrics := wsUC.NewMetrics(registry)

	// Redis - optional mirror of broadcast events
	redisClient, err := configRedis.Connect(cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	var sinks []pubsub.Sink
	if redisClient != nil {
		defer redisClient.Close()
		sinks = append(sinks, friendRedis.New(redisClient, logger))
		logger.Info(ctx, "Redis event mirror initialized")
	}

	// Session
	auth := sessionUC.New(logger, session.Options{
		BaseURL:      cfg.API.BaseURL,
		LoginPath:    cfg.API.LoginPath,
		LogoutPath:   cfg.API.LogoutPath,
		TokenCookies: cfg.API.TokenCookies,
		Timeout:      cfg.API.Timeout,
	})
	sess, err := auth.Login(ctx, session.Credentials{Email: creds.Email, Password: creds.Password})
	if err != nil {
		logger.Errorf(ctx, "Login failed: %v", err)
		return
	}

	// Alert feed
	coord, err := coordinator.New(sess, coordinator.Deps{
		Logger: logger,
		Push: ws.Config{
			URL:               cfg.Push.URL,
			ReconnectDelay:    cfg.Push.ReconnectDelay,
			HeartbeatOutgoing: cfg.Push.HeartbeatOutgoing,
			HeartbeatIncoming: cfg.Push.HeartbeatIncoming,
			HandshakeTimeout:  cfg.Push.HandshakeTimeout,
			WriteWait:         cfg.Push.WriteWait,
			MaxMessageSize:    cfg.Push.MaxMessageSize,
		},
		Metrics: pushMetrics,
		Toast:   toast.Options{TTL: cfg.Toast.TTL},
		Labels: friend.Labels{
			Accepted: model.ProcessedAction(cfg.Labels.Accepted),
			Rejected: model.ProcessedAction(cfg.Labels.Rejected),
		},
		Sinks: sinks,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to build alert feed: %v", err)
		return
	}
	coord.Connection().OnStateChange(func(from, to ws.State) {
		logger.Infof(ctx, "Push channel %s -> %s", from, to)
	})
	if err := coord.Start(ctx); err != nil {
		logger.Errorf(ctx, "Failed to start alert feed: %v", err)
		return
	}

	// Local view API
	srv, err := httpserver.New(logger, httpserver.Config{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Mode:           cfg.Server.Mode,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		DefaultLang:    cfg.Labels.Lang,
		Coordinator:    coord,
		Gatherer:       registry,
		Redis:          redisClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize view API: %v", err)
		return
	}
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "View API error: %v", err)
	}

	logger.Info(ctx, "Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := coord.Stop(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "Error stopping alert feed: %v", err)
	}
	if err := auth.Logout(shutdownCtx, sess); err != nil {
		logger.Warnf(shutdownCtx, "Logout failed: %v", err)
	}

	logger.Info(shutdownCtx, "Notification client stopped")
}
