package handler

import (
	"github.com/labstack/echo/v4"

	wshandler "github.com/sahakarita/sahakarita/services/chat/handler/websocket"
)

// RegisterRoutes wires the chat websocket endpoint onto an authenticated route group
func RegisterRoutes(g *echo.Group, h *wshandler.ChatHandler) {
	g.GET("/ws/chat", h.HandleConnection)
}
