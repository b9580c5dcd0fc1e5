package log

import (
	"context"

	"go.uber.org/zap"
)

// Logger defines the interface for structured logging.
// Implementations are safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
}

// Init initializes and returns a new Logger with the provided Zap configuration.
func Init(cfg ZapConfig) Logger {
	logger := &zapLogger{cfg: &cfg}
	logger.init()
	return logger
}

// NewNop returns a Logger that discards everything. Used by tests.
func NewNop() Logger {
	return &zapLogger{cfg: &ZapConfig{}, sugarLogger: zap.NewNop().Sugar()}
}

// WithUser returns a context whose log lines carry the given user id.
func WithUser(ctx context.Context, l Logger, userID string) context.Context {
	zl, ok := l.(*zapLogger)
	if !ok {
		return ctx
	}
	return context.WithValue(ctx, loggerKey{}, zl.ctx(ctx).With("user_id", userID))
}
