package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/repository"
	"github.com/nhuanhtuanzz/FoodOrderWeb/internal/service"
)

// jsonError maps the service/repository error taxonomy onto HTTP codes in
// one place so every handler answers the same way.
func jsonError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(404, map[string]string{"error": "not found"})
	case errors.Is(err, repository.ErrDuplicateEmail):
		return c.JSON(400, map[string]string{"error": "email already exists"})
	case errors.Is(err, service.ErrValidation):
		return c.JSON(400, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownStatus):
		return c.JSON(400, map[string]string{"error": "unknown order status"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(401, map[string]string{"error": "invalid email or password"})
	case errors.Is(err, repository.ErrStatusInUse):
		return c.JSON(409, map[string]string{"error": "order status is still in use"})
	default:
		return c.JSON(500, map[string]string{"error": err.Error()})
	}
}
