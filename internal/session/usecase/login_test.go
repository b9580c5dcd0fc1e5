package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notification-client/internal/session"
	"notification-client/pkg/log"
)

type authServer struct {
	srv        *httptest.Server
	body       string
	cookie     *http.Cookie
	gotCreds   session.Credentials
	logouts    int
	sawCookies []string
}

func newAuthServer(t *testing.T) *authServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	a := &authServer{body: `{"data":{"userId":42}}`, cookie: &http.Cookie{Name: "SESSION", Value: "opaque", Path: "/"}}
	r := gin.New()
	r.POST(session.DefaultLoginPath, func(c *gin.Context) {
		if err := c.ShouldBindJSON(&a.gotCreds); err != nil || a.gotCreds.Password != "secret" {
			c.Status(http.StatusUnauthorized)
			return
		}
		http.SetCookie(c.Writer, a.cookie)
		c.Data(http.StatusOK, "application/json", []byte(a.body))
	})
	r.POST(session.DefaultLogoutPath, func(c *gin.Context) {
		a.logouts++
		if ck, err := c.Cookie(a.cookie.Name); err == nil {
			a.sawCookies = append(a.sawCookies, ck)
		}
		c.Status(http.StatusNoContent)
	})
	a.srv = httptest.NewServer(r)
	t.Cleanup(a.srv.Close)
	return a
}

func TestLoginUserIDFromBody(t *testing.T) {
	a := newAuthServer(t)
	uc := New(log.NewNop(), session.Options{BaseURL: a.srv.URL})

	s, err := uc.Login(context.Background(), session.Credentials{Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "42", s.UserID)
	assert.Equal(t, a.srv.URL, s.BaseURL())
	assert.Equal(t, "a@b.c", a.gotCreds.Email)

	u, _ := url.Parse(a.srv.URL)
	require.Len(t, s.Jar.Cookies(u), 1)

	require.NoError(t, uc.Logout(context.Background(), s))
	assert.Equal(t, 1, a.logouts)
	assert.Equal(t, []string{"opaque"}, a.sawCookies)
}

func TestLoginUserIDFromStringID(t *testing.T) {
	a := newAuthServer(t)
	a.body = `{"data":{"id":"u-9"}}`
	uc := New(log.NewNop(), session.Options{BaseURL: a.srv.URL})

	s, err := uc.Login(context.Background(), session.Credentials{Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "u-9", s.UserID)
}

func TestLoginUserIDFromTokenCookie(t *testing.T) {
	a := newAuthServer(t)
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{"sub": "77"}).SignedString([]byte("k"))
	require.NoError(t, err)
	a.body = `{"data":{}}`
	a.cookie = &http.Cookie{Name: "accessToken", Value: token, Path: "/"}
	uc := New(log.NewNop(), session.Options{BaseURL: a.srv.URL, TokenCookies: []string{"accessToken"}})

	s, err := uc.Login(context.Background(), session.Credentials{Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "77", s.UserID)
}

func TestLoginWithoutUserID(t *testing.T) {
	a := newAuthServer(t)
	a.body = `{"data":{}}`
	uc := New(log.NewNop(), session.Options{BaseURL: a.srv.URL})

	_, err := uc.Login(context.Background(), session.Credentials{Email: "a@b.c", Password: "secret"})
	assert.ErrorIs(t, err, session.ErrNoUserID)
}

func TestLoginRejected(t *testing.T) {
	a := newAuthServer(t)
	uc := New(log.NewNop(), session.Options{BaseURL: a.srv.URL})

	_, err := uc.Login(context.Background(), session.Credentials{Email: "a@b.c", Password: "wrong"})
	assert.ErrorIs(t, err, session.ErrLoginFailed)

	_, err = uc.Login(context.Background(), session.Credentials{})
	assert.ErrorIs(t, err, session.ErrMissingCredentials)
}

func TestLogoutNilSession(t *testing.T) {
	uc := New(log.NewNop(), session.Options{BaseURL: "http://localhost"})
	assert.NoError(t, uc.Logout(context.Background(), nil))
}
