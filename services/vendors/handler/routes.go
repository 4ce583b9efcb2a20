package handler

import (
	"github.com/labstack/echo/v4"

	httphandler "github.com/sahakarita/sahakarita/services/vendors/handler/http"
)

// RegisterRoutes wires the vendor directory endpoints onto an authenticated route group
func RegisterRoutes(g *echo.Group, h *httphandler.VendorHandler) {
	g.POST("/vendors", h.CreateVendor)
	g.GET("/vendors", h.ListVendors)
	g.GET("/vendors/:id", h.GetVendor)
	g.PUT("/vendors/:id", h.UpdateVendor)
	g.DELETE("/vendors/:id", h.DeleteVendor)
}
