// Package router initializes the HTTP router (using Echo).
//
// It registers the global middleware chain and maps every path to its
// handler.
package router

import (
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/handler"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/middleware"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance. CORS runs first so that every
// response, errors included, carries the CORS headers.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.Debug = !s.Config.IsProduction()
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORSHeaders(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerUserRoutes(router, h)
	registerProductRoutes(router, h)
	registerOrderRoutes(router, h)

	return router
}
