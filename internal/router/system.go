package router

import (
	"github.com/labstack/echo/v4"

	"github.com/corecord/corecord-backend/internal/handler"
)

// registerSystemRoutes mounts the health check and the API docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	r.Static("/static", "static")
}
