package handler

import (
	"github.com/labstack/echo/v4"

	httphandler "github.com/sahakarita/sahakarita/services/users/handler/http"
)

// RegisterPublicRoutes wires authentication endpoints that need no token
func RegisterPublicRoutes(e *echo.Echo, h *httphandler.UserHandler) {
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
}

// RegisterRoutes wires profile endpoints onto an authenticated route group
func RegisterRoutes(g *echo.Group, h *httphandler.UserHandler) {
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpdateProfile)
}
