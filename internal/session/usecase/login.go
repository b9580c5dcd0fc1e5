package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"

	"notification-client/internal/session"
	"notification-client/pkg/jwt"
	pkgRest "notification-client/pkg/rest"
)

type loginResponse struct {
	Data struct {
		UserID json.RawMessage `json:"userId"`
		ID     json.RawMessage `json:"id"`
	} `json:"data"`
}

func (uc *implUseCase) Login(ctx context.Context, creds session.Credentials) (*session.Session, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, session.ErrMissingCredentials
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	client, err := pkgRest.New(uc.opts.BaseURL, pkgRest.NewHTTPClient(jar, uc.opts.Timeout))
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := client.Do(ctx, http.MethodPost, uc.opts.LoginPath, creds, &resp); err != nil {
		uc.l.Warnf(ctx, "internal.session.usecase.Login: login as %s rejected: %v", creds.Email, err)
		return nil, fmt.Errorf("%w: %w", session.ErrLoginFailed, err)
	}

	userID := firstID(resp.Data.UserID, resp.Data.ID)
	if userID == "" {
		userID, err = uc.userIDFromCookies(jar, client.BaseURL())
		if err != nil {
			uc.l.Errorf(ctx, "internal.session.usecase.Login: %v", err)
			return nil, err
		}
	}

	uc.l.Infof(ctx, "internal.session.usecase.Login: logged in as user %s", userID)
	return &session.Session{UserID: userID, Client: client, Jar: jar}, nil
}

func (uc *implUseCase) userIDFromCookies(jar http.CookieJar, baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	claims, err := jwt.FromCookies(jar.Cookies(u), uc.opts.TokenCookies...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", session.ErrNoUserID, err)
	}
	return claims.Sub, nil
}

func (uc *implUseCase) Logout(ctx context.Context, s *session.Session) error {
	if s == nil {
		return nil
	}
	if err := s.Client.Do(ctx, http.MethodPost, uc.opts.LogoutPath, nil, nil); err != nil {
		uc.l.Warnf(ctx, "internal.session.usecase.Logout: upstream logout for user %s failed: %v", s.UserID, err)
		return err
	}
	uc.l.Infof(ctx, "internal.session.usecase.Logout: user %s logged out", s.UserID)
	return nil
}

// firstID returns the first id that is a JSON string or number.
func firstID(candidates ...json.RawMessage) string {
	for _, raw := range candidates {
		if len(raw) == 0 {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			if _, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
				return n.String()
			}
		}
	}
	return ""
}
