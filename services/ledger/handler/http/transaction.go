package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sahakarita/sahakarita/internal/pkg/models"
	"github.com/sahakarita/sahakarita/internal/utils"
	"github.com/sahakarita/sahakarita/services/ledger"
)

// TransactionHandler handles HTTP requests for the ledger
type TransactionHandler struct {
	transactionUC ledger.TransactionUC
}

// NewTransactionHandler creates a new ledger HTTP handler
func NewTransactionHandler(transactionUC ledger.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
	}
}

// CreateTransaction handles POST /transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	tx, err := h.transactionUC.CreateTransaction(c.Request().Context(), &req, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", tx)
}

// UpdateTransactionStatus handles PUT /transactions/:id/status
func (h *TransactionHandler) UpdateTransactionStatus(c echo.Context) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req models.UpdateTransactionStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	tx, err := h.transactionUC.UpdateTransactionStatus(c.Request().Context(), id, &req, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction updated successfully", tx)
}

// GetTransaction handles GET /transactions/:id
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	tx, err := h.transactionUC.GetTransaction(c.Request().Context(), id, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", tx)
}

// ListTransactions handles GET /transactions with optional filters
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	filter, err := parseFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	transactions, err := h.transactionUC.ListTransactions(c.Request().Context(), filter, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", transactions)
}

// GetGroupBalance handles GET /groups/:id/balance
func (h *TransactionHandler) GetGroupBalance(c echo.Context) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group ID")
	}

	summary, err := h.transactionUC.GetGroupBalance(c.Request().Context(), groupID, userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Group balance retrieved successfully", summary)
}

func parseFilter(c echo.Context) (*models.TransactionFilter, error) {
	filter := &models.TransactionFilter{}

	if raw := c.QueryParam("group_id"); raw != "" {
		groupID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid group_id filter")
		}
		filter.GroupID = &groupID
	}
	if raw := c.QueryParam("user_id"); raw != "" {
		filterUserID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid user_id filter")
		}
		filter.UserID = &filterUserID
	}
	if raw := c.QueryParam("type"); raw != "" {
		txType := models.TransactionType(raw)
		filter.Type = &txType
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := models.TransactionStatus(raw)
		filter.Status = &status
	}

	return filter, nil
}
