package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"notification-client/pkg/locale"
	"notification-client/pkg/log"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func TestRecovery(t *testing.T) {
	r := newEngine(New(log.NewNop(), "en").Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"errorCode":500,"message":"Something went wrong"}`, w.Body.String())
}

func TestLocale(t *testing.T) {
	r := newEngine(New(log.NewNop(), "ja").Locale())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, locale.GetLang(c.Request.Context())) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, locale.JA, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("lang", "vi")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, locale.VI, w.Body.String())
}

func TestCORS(t *testing.T) {
	r := newEngine(CORS(DefaultCORSConfig([]string{"http://localhost:3000", "*.example.com"})))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		name, method, origin, wantOrigin string
		wantCode                         int
	}{
		{"allowed", http.MethodGet, "http://localhost:3000", "http://localhost:3000", http.StatusOK},
		{"wildcard subdomain", http.MethodGet, "https://app.example.com", "https://app.example.com", http.StatusOK},
		{"foreign origin", http.MethodGet, "https://evil.test", "", http.StatusOK},
		{"preflight", http.MethodOptions, "http://localhost:3000", "http://localhost:3000", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
