// Package cookie builds the session cookies carrying access and refresh tokens.
package cookie

import (
	"net/http"
	"time"
)

const (
	AccessTokenName  = "accessToken"
	RefreshTokenName = "refreshToken"
)

// Factory stamps every cookie with the same domain and security flags.
// Secure is required by browsers for SameSite=None and is only dropped
// for plain-http local development.
type Factory struct {
	domain   string
	insecure bool
}

func NewFactory(domain string, insecure bool) *Factory {
	return &Factory{domain: domain, insecure: insecure}
}

func (f *Factory) Create(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   f.domain,
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   !f.insecure,
		SameSite: http.SameSiteNoneMode,
	}
}

// Delete returns a cookie that makes the browser drop name immediately.
func (f *Factory) Delete(name string) *http.Cookie {
	c := f.Create(name, "", 0)
	c.MaxAge = -1
	return c
}

// Value reads a cookie from the request; missing cookies yield "".
func Value(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
