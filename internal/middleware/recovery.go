package middleware

import (
	"notification-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery answers a panicking handler with a 500 envelope.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				m.l.Errorf(ctx, "internal.middleware.Recovery: panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err)
				c.Abort()
			}
		}()
		c.Next()
	}
}
