package middleware

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/corecord/corecord-backend/internal/lib/token"
	"github.com/corecord/corecord-backend/internal/server"
)

// Middlewares groups every middleware component used by the router.
type Middlewares struct {
	Global          *GlobalMiddlewares
	Auth            *AuthMiddleware
	ContextEnhancer *ContextEnhancer
	Tracing         *TracingMiddleware
	RateLimit       *RateLimitMiddleware
}

// NewMiddlewares builds the middleware set. Tracing degrades into a no-op
// when New Relic is not configured.
func NewMiddlewares(s *server.Server, issuer *token.Issuer) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Auth:            NewAuthMiddleware(s, issuer),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
