package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"notification-client/internal/coordinator"
	"notification-client/internal/middleware"
	"notification-client/pkg/log"
	pkgRedis "notification-client/pkg/redis"
)

// HTTPServer is the local view API over one coordinator.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) serves until its context ends.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	host   string
	port   int

	coord    coordinator.Coordinator
	gatherer prometheus.Gatherer
	mw       middleware.Middleware
	cors     middleware.CORSConfig

	// Optional event mirror, reported by the health check.
	redis pkgRedis.IRedis

	srv *http.Server
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Host           string
	Port           int
	Mode           string
	AllowedOrigins []string
	DefaultLang    string

	Coordinator coordinator.Coordinator
	Gatherer    prometheus.Gatherer
	Redis       pkgRedis.IRedis
}

// New creates the server and maps its routes. Nothing listens until Run.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:      gin.New(),
		logger:   logger,
		host:     cfg.Host,
		port:     cfg.Port,
		coord:    cfg.Coordinator,
		gatherer: cfg.Gatherer,
		mw:       middleware.New(logger, cfg.DefaultLang),
		cors:     middleware.DefaultCORSConfig(cfg.AllowedOrigins),
		redis:    cfg.Redis,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.gatherer == nil {
		srv.gatherer = prometheus.DefaultGatherer
	}
	srv.mapHandlers()

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.coord == nil {
		return errors.New("coordinator is required")
	}
	return nil
}

// Handler exposes the routes, e.g. for httptest.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
