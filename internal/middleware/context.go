package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/corecord/corecord-backend/internal/logger"
	"github.com/corecord/corecord-backend/internal/server"
)

const (
	UserIDKey = "user_id"
	LoggerKey = "logger"
)

// ContextEnhancer attaches a request-scoped logger carrying the request id,
// route, client ip, trace ids and, once authenticated, the user id.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext stores the request logger under LoggerKey.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			if userID, ok := GetUserID(c); ok {
				contextLogger = contextLogger.With().Int64("user_id", userID).Logger()
			}

			c.Set(LoggerKey, &contextLogger)

			return next(c)
		}
	}
}

// GetUserID returns the id stored by RequireAuth.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(UserIDKey).(int64)
	return userID, ok
}

// GetLogger returns the request-scoped logger, or a no-op logger when
// EnhanceContext did not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return l
	}
	l := zerolog.Nop()
	return &l
}
