package middleware

import (
	"notification-client/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale reads the "lang" header into the request context, falling back to
// the configured language.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.defaultLang
		if h := c.GetHeader("lang"); h != "" {
			lang = locale.ParseLang(h)
		}

		ctx := locale.SetLocaleToContext(c.Request.Context(), lang)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
