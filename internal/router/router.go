// Package router builds the Echo instance: global middlewares, the error
// handler and every route.
package router

import (
	"github.com/deppfellow/hr-validator/internal/handler"
	"github.com/deppfellow/hr-validator/internal/middleware"
	"github.com/deppfellow/hr-validator/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires middlewares and routes. Order matters: the request id and
// New Relic transaction must exist before the request logger is built, and
// the request logger must exist before anything logs.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
		middlewares.Global.BodyLimit(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerEmployeeRoutes(v1, h)

	return router
}
