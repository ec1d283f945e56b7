package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/corecord/corecord-backend/internal/errs"
	"github.com/corecord/corecord-backend/internal/lib/cookie"
	"github.com/corecord/corecord-backend/internal/lib/token"
	"github.com/corecord/corecord-backend/internal/server"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests with the access token issued by
// this service.
type AuthMiddleware struct {
	server *server.Server
	issuer *token.Issuer
}

func NewAuthMiddleware(s *server.Server, issuer *token.Issuer) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		issuer: issuer,
	}
}

// accessToken reads the accessToken cookie, falling back to an
// Authorization: Bearer header.
func accessToken(c echo.Context) string {
	if value := cookie.Value(c.Request(), cookie.AccessTokenName); value != "" {
		return value
	}
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	return ""
}

// RequireAuth rejects requests without a valid access token and stores the
// authenticated user id in the echo context under UserIDKey.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		raw := accessToken(c)
		if raw == "" {
			return errs.New(errs.GeneralUnauthorized)
		}

		userID, err := auth.issuer.Parse(raw, token.KindAccess)
		if err != nil {
			auth.server.Logger.Debug().
				Err(err).
				Str("function", "RequireAuth").
				Str("request_id", GetRequestID(c)).
				Dur("duration", time.Since(start)).
				Msg("access token rejected")
			return errs.New(errs.TokenInvalidAccess)
		}

		c.Set(UserIDKey, userID)

		auth.server.Logger.Debug().
			Str("function", "RequireAuth").
			Int64("user_id", userID).
			Str("request_id", GetRequestID(c)).
			Dur("duration", time.Since(start)).
			Msg("user authenticated successfully")

		return next(c)
	}
}
