package session

import (
	"net/http"
	"time"

	pkgRest "notification-client/pkg/rest"
)

const (
	DefaultLoginPath  = "/api/v1/auth/login"
	DefaultLogoutPath = "/api/v1/auth/logout"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Options configure the login flow. Empty paths take the defaults.
type Options struct {
	BaseURL    string
	LoginPath  string
	LogoutPath string
	// TokenCookies names the cookies that may hold a JWT with the user id
	// as subject. Empty means any cookie.
	TokenCookies []string
	Timeout      time.Duration
}

// Session is one authenticated login. It is discarded on logout.
type Session struct {
	UserID string
	Client pkgRest.IClient
	Jar    http.CookieJar
}

func (s *Session) BaseURL() string {
	return s.Client.BaseURL()
}
