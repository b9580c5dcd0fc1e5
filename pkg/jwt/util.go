package jwt

import "net/http"

// FromCookies parses the first cookie named in names that holds a token with
// a subject. With no names every cookie is tried.
func FromCookies(cookies []*http.Cookie, names ...string) (*Claims, error) {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	for _, c := range cookies {
		if len(wanted) > 0 && !wanted[c.Name] {
			continue
		}
		if claims, err := ParseUnverified(c.Value); err == nil {
			return claims, nil
		}
	}
	return nil, ErrNoToken
}
