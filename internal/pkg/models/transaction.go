package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType identifies how a transaction moves money through the group wallet
type TransactionType string

const (
	TransactionTypeContribution TransactionType = "contribution"
	TransactionTypeWithdrawal   TransactionType = "withdrawal"
	TransactionTypeLoan         TransactionType = "loan"
	TransactionTypeRepayment    TransactionType = "repayment"
)

// TransactionStatus is the lifecycle state of a transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusApproved  TransactionStatus = "approved"
	TransactionStatusRejected  TransactionStatus = "rejected"
	TransactionStatusCompleted TransactionStatus = "completed"
)

// LoanDetails carries loan-specific fields, present only on loan transactions
type LoanDetails struct {
	BorrowerID   *uuid.UUID      `json:"borrower_id,omitempty"`
	DueDate      *time.Time      `json:"due_date,omitempty"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PaidAmount   decimal.Decimal `json:"paid_amount"`
}

// Transaction represents a single ledger entry against a group wallet.
// Status transitions exactly once from pending to completed or rejected;
// transactions created without an approval requirement start completed.
type Transaction struct {
	ID              uuid.UUID         `json:"id"`
	GroupID         uuid.UUID         `json:"group_id"`
	UserID          uuid.UUID         `json:"user_id"`
	Type            TransactionType   `json:"type"`
	Amount          decimal.Decimal   `json:"amount"`
	Status          TransactionStatus `json:"status"`
	Description     string            `json:"description,omitempty"`
	LoanDetails     *LoanDetails      `json:"loan_details,omitempty"`
	ApprovedBy      *uuid.UUID        `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time        `json:"approved_at,omitempty"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// CreateTransactionRequest is the payload for submitting a transaction
type CreateTransactionRequest struct {
	GroupID     uuid.UUID       `json:"group_id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`

	// Loan specific fields
	BorrowerID   *uuid.UUID       `json:"borrower_id,omitempty"`
	DueDate      *time.Time       `json:"due_date,omitempty"`
	InterestRate *decimal.Decimal `json:"interest_rate,omitempty"`
}

// UpdateTransactionStatusRequest is the admin approval decision payload
type UpdateTransactionStatusRequest struct {
	Status          TransactionStatus `json:"status"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
}

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	GroupID *uuid.UUID
	UserID  *uuid.UUID
	Type    *TransactionType
	Status  *TransactionStatus
}

// GroupBalanceSummary aggregates completed transactions for a group
type GroupBalanceSummary struct {
	CurrentBalance     decimal.Decimal `json:"current_balance"`
	Currency           string          `json:"currency"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalWithdrawals   decimal.Decimal `json:"total_withdrawals"`
	TotalLoans         decimal.Decimal `json:"total_loans"`
	TotalRepayments    decimal.Decimal `json:"total_repayments"`
	OutstandingLoans   decimal.Decimal `json:"outstanding_loans"`
}

// TransactionEvent is published to NATS when a transaction changes state
type TransactionEvent struct {
	TransactionID uuid.UUID         `json:"transaction_id"`
	GroupID       uuid.UUID         `json:"group_id"`
	UserID        uuid.UUID         `json:"user_id"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
	Timestamp     time.Time         `json:"timestamp"`
}
