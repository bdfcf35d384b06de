// Package handler contains the HTTP handlers. Every failure response
// is a JSON body with a human-readable detail string; stack traces and
// driver errors never reach the client.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dalanakids/shop-api/internal/repository"
	"github.com/dalanakids/shop-api/internal/service"
)

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// serviceError maps auth service sentinels onto HTTP responses.
func serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, echo.Map{"detail": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"detail": err.Error()})
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrResetTokenExpired):
		return c.JSON(http.StatusNotFound, echo.Map{"detail": err.Error()})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"detail": err.Error()})
	case errors.Is(err, service.ErrTooManyResetAttempts):
		return c.JSON(http.StatusTooManyRequests, echo.Map{"detail": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "operation failed"})
}

// repoError maps repository sentinels onto HTTP responses for the
// CRUD handlers. notFoundMsg names the missing entity.
func repoError(c echo.Context, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"detail": notFoundMsg})
	case errors.Is(err, repository.ErrDuplicate):
		return c.JSON(http.StatusConflict, echo.Map{"detail": "already exists"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "operation failed"})
}
