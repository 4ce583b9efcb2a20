package utils

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/sahakarita/sahakarita/internal/pkg/apperrors"
)

// DomainErrorResponse maps domain error sentinels onto HTTP responses
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrNotAuthorized):
		return ForbiddenResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrAlreadyMember):
		return ConflictResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrInvalidInput):
		return BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return UnprocessableEntityResponse(c, err.Error())
	default:
		return InternalServerErrorResponse(c, err.Error())
	}
}
