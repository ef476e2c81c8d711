package router

import (
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints outside the data model:
// static pages, API info, the fixed status payload and the dependency check.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Pages.Dashboard)
	r.GET("/test", h.Pages.TestPage)
	r.GET("/api", h.Pages.APIInfo)
	r.GET("/status", h.Pages.Status)

	r.GET("/health", h.Health.CheckHealth)
}
