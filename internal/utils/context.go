package utils

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserIDFromContext extracts the authenticated user ID set by the JWT middleware
func UserIDFromContext(c echo.Context) (uuid.UUID, error) {
	raw := c.Get("user_id")
	if raw == nil {
		return uuid.Nil, fmt.Errorf("missing user ID in request context")
	}

	userID, err := uuid.Parse(fmt.Sprintf("%v", raw))
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("invalid user ID in request context")
	}

	return userID, nil
}
