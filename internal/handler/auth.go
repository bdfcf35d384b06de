package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dalanakids/shop-api/internal/middleware"
	"github.com/dalanakids/shop-api/internal/service"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Auth    *service.AuthService
	Revoker *middleware.Revoker
}

func NewAuthHandler(auth *service.AuthService, revoker *middleware.Revoker) *AuthHandler {
	return &AuthHandler{Auth: auth, Revoker: revoker}
}

// ----- DTOs -----

type registerReq struct {
	UserName        string `json:"user_name" form:"user_name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm"`
}

type confirmReq struct {
	Code int `json:"code" form:"code"`
}

type loginReq struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type forgotReq struct {
	Email string `json:"email" form:"email"`
}

type resetReq struct {
	Token     string `json:"token" form:"token"`
	Password1 string `json:"password1" form:"password1"`
	Password2 string `json:"password2" form:"password2"`
}

// Register handles POST /auth/register: create an unconfirmed user and
// mail the confirmation code.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Auth.Register(ctx, req.UserName, req.Email, req.Password, req.PasswordConfirm); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User " + req.Email + " created successfully."})
}

// Confirm handles POST /auth/confirm: upgrade the pending registration
// matching the 4-digit code.
func (h *AuthHandler) Confirm(c echo.Context) error {
	var req confirmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Auth.Confirm(ctx, req.Code); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Registration confirmed."})
}

// Login handles POST /auth/login. The payload is form-encoded
// username/password (the username is the email); the response carries
// the bearer token in the body.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "username and password are required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	token, err := h.Auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": token.Token,
		"token_type":   "bearer",
	})
}

// Logout handles GET /auth/logout (protected). The token's id is
// pushed onto the revocation list for the remainder of its validity;
// without Redis this is an acknowledgment and the client just drops
// the token.
func (h *AuthHandler) Logout(c echo.Context) error {
	jti, _ := c.Get(middleware.CtxTokenID).(string)
	exp, _ := c.Get(middleware.CtxTokenExp).(time.Time)

	if ttl := time.Until(exp); ttl > 0 {
		if err := h.Revoker.Revoke(c.Request().Context(), jti, ttl); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "operation failed"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Logout successful"})
}

// ForgotPassword handles POST /auth/forgot_password: issue a reset
// token and mail the reset link.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request body"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "email is required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Auth.ForgotPassword(ctx, req.Email); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Email to " + req.Email + " sent successfully."})
}

// ResetPassword handles POST /auth/reset_password: consume the token
// and store the new password hash.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request body"})
	}
	if req.Token == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "token is required"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Auth.ResetPassword(ctx, req.Token, req.Password1, req.Password2); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Password reset successfully"})
}
