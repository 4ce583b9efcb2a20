package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Group statuses
const (
	GroupStatusActive   = "active"
	GroupStatusInactive = "inactive"
)

// Group member roles
const (
	MemberRoleAdmin  = "admin"
	MemberRoleMember = "member"
)

// GroupWallet is the shared pool of funds owned by a group
type GroupWallet struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// GroupSettings controls contribution and loan policy for a group
type GroupSettings struct {
	MinContribution decimal.Decimal `json:"min_contribution"`
	MaxLoanAmount   decimal.Decimal `json:"max_loan_amount"` // zero means unlimited
	RequireApproval bool            `json:"require_approval"`
	LoanTermDays    int             `json:"loan_term_days"`
}

// GroupMember represents a user's membership in a savings group
type GroupMember struct {
	GroupID           uuid.UUID       `json:"group_id" db:"group_id"`
	UserID            uuid.UUID       `json:"user_id" db:"user_id"`
	Role              string          `json:"role" db:"role"`
	JoinedAt          time.Time       `json:"joined_at" db:"joined_at"`
	ContributionTotal decimal.Decimal `json:"contribution_total" db:"contribution_total"`
}

// Group represents a community savings pool with a shared wallet.
// Exactly one member holds the admin role and that member equals AdminID.
type Group struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	AdminID     uuid.UUID     `json:"admin_id"`
	Members     []GroupMember `json:"members,omitempty"`
	Wallet      GroupWallet   `json:"wallet"`
	Settings    GroupSettings `json:"settings"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// CreateGroupRequest is the payload for creating a group
type CreateGroupRequest struct {
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	MinContribution *decimal.Decimal `json:"min_contribution,omitempty"`
	MaxLoanAmount   *decimal.Decimal `json:"max_loan_amount,omitempty"`
	RequireApproval *bool            `json:"require_approval,omitempty"`
	LoanTermDays    *int             `json:"loan_term_days,omitempty"`
	Currency        string           `json:"currency,omitempty"`
}

// UpdateGroupRequest carries admin-only group changes
type UpdateGroupRequest struct {
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	MinContribution *decimal.Decimal `json:"min_contribution,omitempty"`
	MaxLoanAmount   *decimal.Decimal `json:"max_loan_amount,omitempty"`
	RequireApproval *bool            `json:"require_approval,omitempty"`
	LoanTermDays    *int             `json:"loan_term_days,omitempty"`
	Status          *string          `json:"status,omitempty"`
}
