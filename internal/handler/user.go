package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dalanakids/shop-api/internal/middleware"
	"github.com/dalanakids/shop-api/internal/model"
	"github.com/dalanakids/shop-api/internal/repository"
	"github.com/dalanakids/shop-api/internal/utils"
)

// UserHandler exposes the admin user listing plus self-service account
// updates.
type UserHandler struct {
	Users      *repository.UserRepo
	BcryptCost int
}

func NewUserHandler(users *repository.UserRepo, bcryptCost int) *UserHandler {
	return &UserHandler{Users: users, BcryptCost: bcryptCost}
}

type userUpdateReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// List handles GET /users (admin).
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return repoError(c, err, "no users found")
	}
	return c.JSON(http.StatusOK, users)
}

// GetByID handles GET /users/user_id/:user_id (admin).
func (h *UserHandler) GetByID(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	user, err := h.Users.GetByID(ctx, c.Param("user_id"))
	if err != nil {
		return repoError(c, err, "user not found")
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /users. Callers always update their own record;
// the id comes from the verified token, never from the payload.
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := c.Get(middleware.CtxUserID).(string)
	if !ok || id == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "not authenticated"})
	}
	var req userUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request body"})
	}

	fields := map[string]any{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Email != "" {
		fields["email"] = req.Email
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password, h.BcryptCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "operation failed"})
		}
		fields["password_hash"] = hash
	}
	if len(fields) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "nothing to update"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Users.Update(ctx, id, fields); err != nil {
		return repoError(c, err, "user not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User updated successfully."})
}

// Delete handles DELETE /users/:user_id. Admins may delete anyone; a
// regular user can only delete their own account, whatever id the path
// carries.
func (h *UserHandler) Delete(c echo.Context) error {
	callerID, _ := c.Get(middleware.CtxUserID).(string)
	role, _ := c.Get(middleware.CtxRole).(model.Role)

	target := c.Param("user_id")
	if role != model.RoleAdmin {
		target = callerID
	}
	if target == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "user id is required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Users.Delete(ctx, target); err != nil {
		return repoError(c, err, "user not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully."})
}

// CheckAuthorization handles GET /users/check_authorization (admin).
// Reaching the handler at all means the guard accepted the caller.
func (h *UserHandler) CheckAuthorization(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status_code": http.StatusOK, "message": "Authorized"})
}
