package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
	"github.com/sahakarita/sahakarita/internal/pkg/logger"
	"github.com/sahakarita/sahakarita/internal/pkg/models"
)

func validTransactionType(t models.TransactionType) bool {
	switch t {
	case models.TransactionTypeContribution,
		models.TransactionTypeWithdrawal,
		models.TransactionTypeLoan,
		models.TransactionTypeRepayment:
		return true
	}
	return false
}

// needsApproval reports whether the group's policy holds this transaction
// for admin review. Contributions and repayments are never held.
func needsApproval(group *models.Group, txType models.TransactionType) bool {
	if !group.Settings.RequireApproval {
		return false
	}
	return txType == models.TransactionTypeWithdrawal || txType == models.TransactionTypeLoan
}

// CreateTransaction validates a transaction against group policy, assigns its
// initial status and applies any creation-time wallet effect.
//
// Only contributions post to the wallet at creation time. Withdrawals, loans
// and repayments mutate the wallet exclusively through the approval path,
// even when they are created directly in completed status.
func (uc *TransactionUC) CreateTransaction(ctx context.Context, req *models.CreateTransactionRequest, userID uuid.UUID) (*models.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrInvalidAmount)
	}
	if !validTransactionType(req.Type) {
		return nil, fmt.Errorf("unknown transaction type %q: %w", req.Type, apperrors.ErrInvalidInput)
	}

	isMember, err := uc.groups.IsMember(ctx, req.GroupID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, fmt.Errorf("user %s is not a member of group %s: %w", userID, req.GroupID, apperrors.ErrNotAuthorized)
	}

	group, err := uc.groups.GetGroup(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	if req.Type == models.TransactionTypeContribution &&
		group.Settings.MinContribution.IsPositive() &&
		req.Amount.LessThan(group.Settings.MinContribution) {
		return nil, fmt.Errorf("contribution below group minimum of %s: %w",
			group.Settings.MinContribution, apperrors.ErrInvalidAmount)
	}
	if req.Type == models.TransactionTypeLoan &&
		group.Settings.MaxLoanAmount.IsPositive() &&
		req.Amount.GreaterThan(group.Settings.MaxLoanAmount) {
		return nil, fmt.Errorf("loan exceeds group maximum of %s: %w",
			group.Settings.MaxLoanAmount, apperrors.ErrInvalidAmount)
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:          uuid.New(),
		GroupID:     req.GroupID,
		UserID:      userID,
		Type:        req.Type,
		Amount:      req.Amount,
		Status:      models.TransactionStatusCompleted,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if needsApproval(group, req.Type) {
		tx.Status = models.TransactionStatusPending
	}

	if req.Type == models.TransactionTypeLoan {
		tx.LoanDetails = uc.buildLoanDetails(req, userID, group, now)
	}

	if req.Type == models.TransactionTypeContribution && tx.Status == models.TransactionStatusCompleted {
		if err := uc.groups.AddToWallet(ctx, req.GroupID, req.Amount); err != nil {
			return nil, err
		}
		if err := uc.groups.AddMemberContribution(ctx, req.GroupID, userID, req.Amount); err != nil {
			return nil, err
		}
		tx.CompletedAt = &now
	}

	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Transaction created",
		logger.String("transaction_id", tx.ID.String()),
		logger.String("group_id", tx.GroupID.String()),
		logger.String("type", string(tx.Type)),
		logger.String("status", string(tx.Status)))

	uc.publishEvent(tx, uc.gw.PublishTransactionCreated)

	return tx, nil
}

func (uc *TransactionUC) buildLoanDetails(req *models.CreateTransactionRequest, userID uuid.UUID, group *models.Group, now time.Time) *models.LoanDetails {
	details := &models.LoanDetails{
		TotalAmount: req.Amount,
		PaidAmount:  decimal.Zero,
	}

	if req.BorrowerID != nil {
		details.BorrowerID = req.BorrowerID
	} else {
		borrower := userID
		details.BorrowerID = &borrower
	}

	if req.DueDate != nil {
		details.DueDate = req.DueDate
	} else {
		due := now.AddDate(0, 0, group.Settings.LoanTermDays)
		details.DueDate = &due
	}

	if req.InterestRate != nil {
		details.InterestRate = *req.InterestRate
	}

	return details
}

// UpdateTransactionStatus settles a pending transaction: the group admin
// either approves it, applying the type-specific wallet effect, or rejects
// it with a reason. Transactions that already left pending are not touched.
func (uc *TransactionUC) UpdateTransactionStatus(ctx context.Context, id uuid.UUID, req *models.UpdateTransactionStatusRequest, approverID uuid.UUID) (*models.Transaction, error) {
	tx, err := uc.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	isAdmin, err := uc.groups.IsAdmin(ctx, tx.GroupID, approverID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, fmt.Errorf("user %s is not the admin of group %s: %w", approverID, tx.GroupID, apperrors.ErrNotAuthorized)
	}

	if tx.Status != models.TransactionStatusPending {
		return nil, fmt.Errorf("transaction %s already %s: %w", tx.ID, tx.Status, apperrors.ErrInvalidInput)
	}

	switch req.Status {
	case models.TransactionStatusApproved:
		return uc.approve(ctx, tx, approverID)
	case models.TransactionStatusRejected:
		return uc.reject(ctx, tx, req.RejectionReason)
	default:
		return nil, fmt.Errorf("decision must be approved or rejected, got %q: %w", req.Status, apperrors.ErrInvalidInput)
	}
}

func (uc *TransactionUC) approve(ctx context.Context, tx *models.Transaction, approverID uuid.UUID) (*models.Transaction, error) {
	if err := uc.settle(ctx, tx); err != nil {
		// Settlement failed: the transaction stays pending untouched.
		return nil, err
	}

	now := time.Now()
	tx.Status = models.TransactionStatusCompleted
	tx.ApprovedBy = &approverID
	tx.ApprovedAt = &now
	tx.CompletedAt = &now
	tx.UpdatedAt = now

	if err := uc.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Transaction approved",
		logger.String("transaction_id", tx.ID.String()),
		logger.String("approved_by", approverID.String()))

	uc.publishEvent(tx, uc.gw.PublishTransactionCompleted)

	return tx, nil
}

// settle applies the approved transaction's wallet effect. The wallet layer
// guards debits server-side, so two concurrent approvals cannot drive the
// balance negative.
func (uc *TransactionUC) settle(ctx context.Context, tx *models.Transaction) error {
	switch tx.Type {
	case models.TransactionTypeContribution:
		if err := uc.groups.AddToWallet(ctx, tx.GroupID, tx.Amount); err != nil {
			return err
		}
		return uc.groups.AddMemberContribution(ctx, tx.GroupID, tx.UserID, tx.Amount)
	case models.TransactionTypeWithdrawal:
		return uc.groups.SubtractFromWallet(ctx, tx.GroupID, tx.Amount)
	case models.TransactionTypeLoan:
		if err := uc.groups.SubtractFromWallet(ctx, tx.GroupID, tx.Amount); err != nil {
			return err
		}
		if tx.LoanDetails == nil {
			tx.LoanDetails = &models.LoanDetails{}
		}
		tx.LoanDetails.TotalAmount = tx.Amount
		tx.LoanDetails.PaidAmount = decimal.Zero
		return nil
	case models.TransactionTypeRepayment:
		// Repayments credit the wallet only. Linking a repayment back to
		// its originating loan is not implemented.
		return uc.groups.AddToWallet(ctx, tx.GroupID, tx.Amount)
	default:
		return fmt.Errorf("unknown transaction type %q: %w", tx.Type, apperrors.ErrInvalidInput)
	}
}

func (uc *TransactionUC) reject(ctx context.Context, tx *models.Transaction, reason string) (*models.Transaction, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("rejection reason is required: %w", apperrors.ErrInvalidInput)
	}

	tx.Status = models.TransactionStatusRejected
	tx.RejectionReason = reason
	tx.UpdatedAt = time.Now()

	if err := uc.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Transaction rejected",
		logger.String("transaction_id", tx.ID.String()),
		logger.String("reason", reason))

	uc.publishEvent(tx, uc.gw.PublishTransactionRejected)

	return tx, nil
}

// GetTransaction retrieves a transaction the requester is allowed to see
func (uc *TransactionUC) GetTransaction(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.Transaction, error) {
	tx, err := uc.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	isMember, err := uc.groups.IsMember(ctx, tx.GroupID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, fmt.Errorf("user %s is not a member of group %s: %w", userID, tx.GroupID, apperrors.ErrNotAuthorized)
	}

	return tx, nil
}

// ListTransactions returns transactions newest-first. Listings scoped to a
// group require membership; unscoped listings cover only the requester's own.
func (uc *TransactionUC) ListTransactions(ctx context.Context, filter *models.TransactionFilter, userID uuid.UUID) ([]*models.Transaction, error) {
	if filter == nil {
		filter = &models.TransactionFilter{}
	}

	if filter.GroupID != nil {
		isMember, err := uc.groups.IsMember(ctx, *filter.GroupID, userID)
		if err != nil {
			return nil, err
		}
		if !isMember {
			return nil, fmt.Errorf("user %s is not a member of group %s: %w", userID, *filter.GroupID, apperrors.ErrNotAuthorized)
		}
	} else {
		filter.UserID = &userID
	}

	return uc.repo.ListTransactions(ctx, filter)
}

// GetGroupBalance aggregates completed transactions for a group alongside
// the live wallet balance
func (uc *TransactionUC) GetGroupBalance(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupBalanceSummary, error) {
	isMember, err := uc.groups.IsMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, fmt.Errorf("user %s is not a member of group %s: %w", userID, groupID, apperrors.ErrNotAuthorized)
	}

	group, err := uc.groups.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	sums, err := uc.repo.SumCompletedByType(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &models.GroupBalanceSummary{
		CurrentBalance:     group.Wallet.Balance,
		Currency:           group.Wallet.Currency,
		TotalContributions: sums.Contributions,
		TotalWithdrawals:   sums.Withdrawals,
		TotalLoans:         sums.Loans,
		TotalRepayments:    sums.Repayments,
		OutstandingLoans:   sums.Loans.Sub(sums.Repayments),
	}, nil
}

func (uc *TransactionUC) publishEvent(tx *models.Transaction, publish func(*models.TransactionEvent) error) {
	event := &models.TransactionEvent{
		TransactionID: tx.ID,
		GroupID:       tx.GroupID,
		UserID:        tx.UserID,
		Type:          tx.Type,
		Amount:        tx.Amount,
		Status:        tx.Status,
		Timestamp:     time.Now(),
	}
	if err := publish(event); err != nil {
		logger.Warn("Failed to publish transaction event",
			logger.String("transaction_id", tx.ID.String()),
			logger.Err(err))
	}
}
