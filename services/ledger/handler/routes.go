package handler

import (
	"github.com/labstack/echo/v4"

	httphandler "github.com/sahakarita/sahakarita/services/ledger/handler/http"
)

// RegisterRoutes wires the ledger endpoints onto an authenticated route group
func RegisterRoutes(g *echo.Group, h *httphandler.TransactionHandler) {
	g.POST("/transactions", h.CreateTransaction)
	g.GET("/transactions", h.ListTransactions)
	g.GET("/transactions/:id", h.GetTransaction)
	g.PUT("/transactions/:id/status", h.UpdateTransactionStatus)
	g.GET("/groups/:id/balance", h.GetGroupBalance)
}
