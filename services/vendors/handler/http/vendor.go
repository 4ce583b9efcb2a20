package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/sahakarita/sahakarita/internal/utils"
	"github.com/sahakarita/sahakarita/services/vendors"
)

// VendorHandler handles HTTP requests for the vendor directory
type VendorHandler struct {
	vendorUC vendors.VendorUC
}

// NewVendorHandler creates a new vendor HTTP handler
func NewVendorHandler(vendorUC vendors.VendorUC) *VendorHandler {
	return &VendorHandler{
		vendorUC: vendorUC,
	}
}

// CreateVendor handles POST /vendors
func (h *VendorHandler) CreateVendor(c echo.Context) error {
	var req models.VendorRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	vendor, err := h.vendorUC.CreateVendor(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Vendor created successfully", vendor)
}

// GetVendor handles GET /vendors/:id
func (h *VendorHandler) GetVendor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vendor ID")
	}

	vendor, err := h.vendorUC.GetVendor(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vendor retrieved successfully", vendor)
}

// ListVendors handles GET /vendors
func (h *VendorHandler) ListVendors(c echo.Context) error {
	result, err := h.vendorUC.ListVendors(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vendors retrieved successfully", result)
}

// UpdateVendor handles PUT /vendors/:id
func (h *VendorHandler) UpdateVendor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vendor ID")
	}

	var req models.VendorRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	vendor, err := h.vendorUC.UpdateVendor(c.Request().Context(), id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vendor updated successfully", vendor)
}

// DeleteVendor handles DELETE /vendors/:id
func (h *VendorHandler) DeleteVendor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vendor ID")
	}

	if err := h.vendorUC.DeleteVendor(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vendor deleted successfully", nil)
}
