package handler

import (
	"context"

	"github.com/centavo/centavo-backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// setupAuthContext injects an authenticated user id into the request
// context the way the auth middleware does
func setupAuthContext(c echo.Context, userID uuid.UUID) {
	ctx := context.WithValue(c.Request().Context(), middleware.UserIDKey, userID)
	c.SetRequest(c.Request().WithContext(ctx))
}
