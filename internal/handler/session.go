package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/lib/cookie"
)

// session writes the token cookies. Cookie lifetimes follow the token
// lifetimes.
type session struct {
	factory           *cookie.Factory
	accessExpiration  time.Duration
	refreshExpiration time.Duration
}

func newSession(factory *cookie.Factory, accessExpiration, refreshExpiration time.Duration) *session {
	return &session{
		factory:           factory,
		accessExpiration:  accessExpiration,
		refreshExpiration: refreshExpiration,
	}
}

func (s *session) set(c echo.Context, pair *dto.TokenPair) {
	s.setAccess(c, pair.AccessToken)
	c.SetCookie(s.factory.Create(cookie.RefreshTokenName, pair.RefreshToken, s.refreshExpiration))
}

func (s *session) setAccess(c echo.Context, accessToken string) {
	c.SetCookie(s.factory.Create(cookie.AccessTokenName, accessToken, s.accessExpiration))
}

func (s *session) clear(c echo.Context) {
	c.SetCookie(s.factory.Delete(cookie.AccessTokenName))
	c.SetCookie(s.factory.Delete(cookie.RefreshTokenName))
}
