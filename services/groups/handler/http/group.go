package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/sahakarita/sahakarita/internal/utils"
	"github.com/sahakarita/sahakarita/services/groups"
)

// GroupHandler handles HTTP requests for savings groups
type GroupHandler struct {
	groupUC groups.GroupUC
}

// NewGroupHandler creates a new group HTTP handler
func NewGroupHandler(groupUC groups.GroupUC) *GroupHandler {
	return &GroupHandler{
		groupUC: groupUC,
	}
}

// CreateGroup handles POST /groups
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	var req models.CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	group, err := h.groupUC.CreateGroup(c.Request().Context(), &req, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Group created successfully", group)
}

// GetGroup handles GET /groups/:id
func (h *GroupHandler) GetGroup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group ID")
	}

	group, err := h.groupUC.GetGroup(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Group retrieved successfully", group)
}

// ListGroups handles GET /groups. With ?mine=true only the caller's groups are returned.
func (h *GroupHandler) ListGroups(c echo.Context) error {
	var memberID *uuid.UUID
	if c.QueryParam("mine") == "true" {
		userID, err := utils.UserIDFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		memberID = &userID
	}

	result, err := h.groupUC.ListGroups(c.Request().Context(), memberID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Groups retrieved successfully", result)
}

// SearchGroups handles GET /groups/search?q=
func (h *GroupHandler) SearchGroups(c echo.Context) error {
	result, err := h.groupUC.SearchGroups(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Groups retrieved successfully", result)
}

// UpdateGroup handles PUT /groups/:id
func (h *GroupHandler) UpdateGroup(c echo.Context) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group ID")
	}

	var req models.UpdateGroupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	group, err := h.groupUC.UpdateGroup(c.Request().Context(), id, &req, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Group updated successfully", group)
}

// JoinGroup handles POST /groups/:id/join
func (h *GroupHandler) JoinGroup(c echo.Context) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group ID")
	}

	group, err := h.groupUC.JoinGroup(c.Request().Context(), id, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Joined group successfully", group)
}

// LeaveGroup handles POST /groups/:id/leave
func (h *GroupHandler) LeaveGroup(c echo.Context) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group ID")
	}

	group, err := h.groupUC.LeaveGroup(c.Request().Context(), id, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Left group successfully", group)
}
