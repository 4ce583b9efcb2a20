package handler

import (
	"github.com/labstack/echo/v4"

	httphandler "github.com/sahakarita/sahakarita/services/groups/handler/http"
)

// RegisterRoutes wires the group endpoints onto an authenticated route group
func RegisterRoutes(g *echo.Group, h *httphandler.GroupHandler) {
	g.POST("/groups", h.CreateGroup)
	g.GET("/groups", h.ListGroups)
	g.GET("/groups/search", h.SearchGroups)
	g.GET("/groups/:id", h.GetGroup)
	g.PUT("/groups/:id", h.UpdateGroup)
	g.POST("/groups/:id/join", h.JoinGroup)
	g.POST("/groups/:id/leave", h.LeaveGroup)
}
