package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notification-client/internal/websocket"
	"notification-client/pkg/errors"
	"notification-client/pkg/response"
)

const serviceName = "notification-client"

// healthCheck reports the push channel state and, when configured, the
// event mirror.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	redis := "disabled"
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			srv.logger.Warnf(ctx, "internal.httpserver.healthCheck: redis ping: %v", err)
			response.Error(c, errMirrorUnhealthy)
			return
		}
		redis = "connected"
	}

	response.OK(c, gin.H{
		"status":     "healthy",
		"service":    serviceName,
		"userId":     srv.coord.UserID(),
		"connection": srv.coord.Connection().State().String(),
		"unread":     len(srv.coord.Reads().Unread()),
		"redis":      redis,
	})
}

// readyCheck succeeds once the push channel is connected.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	state := srv.coord.Connection().State()
	if state != websocket.StateConnected {
		response.Error(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Push channel "+state.String(), http.StatusServiceUnavailable))
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
	})
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
	})
}
