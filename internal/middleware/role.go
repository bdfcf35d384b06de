package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dalanakids/shop-api/internal/model"
)

// UserLoader is the slice of the credential store the guard needs.
// *repository.UserRepo satisfies it.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (model.User, error)
}

// RequireRoles returns a middleware enforcing that the caller holds
// one of the allowed roles. The token's role claim is NOT trusted: the
// user is re-fetched from the store, so a role downgrade or deletion
// takes effect immediately instead of at token expiry. It assumes
// JWTAuth ran earlier and stored the user id in the context.
func RequireRoles(users UserLoader, roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := c.Get(CtxUserID).(string)
			if !ok || id == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "not authenticated"})
			}
			user, err := users.GetByID(c.Request().Context(), id)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"detail": "access denied"})
			}
			if !allowed[user.Role] {
				return c.JSON(http.StatusForbidden, echo.Map{"detail": "access denied"})
			}
			// Refresh the role from the authoritative record.
			c.Set(CtxRole, user.Role)
			return next(c)
		}
	}
}
