// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/erevald/fantasy-names/internal/handler"
)

// RegisterRoutes registers routes that need no dependencies on the
// provided Echo instance. Currently that is only the health check,
// which load balancers and monitoring systems use to verify that the
// service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.Health)
}

// RegisterNames registers the name API under /api/names. The common
// middleware (rate limiting) applies to the whole group; the stats
// endpoint additionally gets the response cache, and the mutating add
// endpoint gets the admin guard. Any nil middleware is skipped.
func RegisterNames(e *echo.Echo, h *handler.NameHandler, common, cache, guard echo.MiddlewareFunc) {
	g := e.Group("/api/names")
	if common != nil {
		g.Use(common)
	}

	g.GET("/random", h.RandomNames)
	if cache != nil {
		g.GET("/stats", h.Stats, cache)
	} else {
		g.GET("/stats", h.Stats)
	}
	if guard != nil {
		g.POST("/add", h.AddName, guard)
	} else {
		g.POST("/add", h.AddName)
	}
}
