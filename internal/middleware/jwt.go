package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dalanakids/shop-api/internal/utils"
)

// Context keys set by JWTAuth for downstream middleware and handlers.
const (
	CtxUserID   = "user_id"
	CtxRole     = "role"
	CtxTokenID  = "token_id"
	CtxTokenExp = "token_exp"
)

// JWTAuth returns an Echo middleware that validates a Bearer session
// token and injects the identity claims into the request context. The
// revoker may be nil; when present, denylisted token ids are rejected
// even though their signature still verifies.
func JWTAuth(secret string, revoker *Revoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.VerifyAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "invalid token"})
			}
			if revoker.IsRevoked(c.Request().Context(), claims.ID) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "token revoked"})
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxTokenID, claims.ID)
			c.Set(CtxTokenExp, claims.Exp)
			return next(c)
		}
	}
}
