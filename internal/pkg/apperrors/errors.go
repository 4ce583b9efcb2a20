// Package apperrors defines the domain error taxonomy shared across services.
// Handlers map these sentinels onto HTTP status codes with errors.Is.
package apperrors

import "errors"

var (
	// ErrNotFound indicates a referenced group, transaction, user or message does not exist
	ErrNotFound = errors.New("resource not found")

	// ErrNotAuthorized indicates the caller lacks membership or admin rights for the operation
	ErrNotAuthorized = errors.New("not authorized")

	// ErrInvalidAmount indicates an amount that violates group contribution or loan policy
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidInput indicates a missing or malformed request field
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientFunds indicates the group wallet cannot cover a debit
	ErrInsufficientFunds = errors.New("insufficient group wallet balance")

	// ErrAlreadyMember indicates a join attempt by an existing member
	ErrAlreadyMember = errors.New("already a member of this group")
)
