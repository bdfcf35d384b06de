package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dalanakids/shop-api/internal/model"
	"github.com/dalanakids/shop-api/internal/repository"
)

// defaultCategoryColor is the storefront accent used when a category
// is created without one.
const defaultCategoryColor = "bg-blue-500"

// CategoryHandler exposes category CRUD.
type CategoryHandler struct {
	Categories *repository.CategoryRepo
}

func NewCategoryHandler(categories *repository.CategoryRepo) *CategoryHandler {
	return &CategoryHandler{Categories: categories}
}

type categoryReq struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// List handles GET /categories (public).
func (h *CategoryHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	categories, err := h.Categories.List(ctx)
	if err != nil {
		return repoError(c, err, "no categories found")
	}
	return c.JSON(http.StatusOK, categories)
}

// GetByID handles GET /categories/:category_id (admin).
func (h *CategoryHandler) GetByID(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	cat, err := h.Categories.GetByID(ctx, c.Param("category_id"))
	if err != nil {
		return repoError(c, err, "category not found")
	}
	return c.JSON(http.StatusOK, cat)
}

// Create handles POST /categories (admin).
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "name is required"})
	}
	if req.Color == "" {
		req.Color = defaultCategoryColor
	}

	cat := model.Category{ID: uuid.NewString(), Name: req.Name, Color: req.Color}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Categories.Create(ctx, &cat); err != nil {
		return repoError(c, err, "category not found")
	}
	return c.JSON(http.StatusCreated, cat)
}

// Update handles PUT /categories/:category_id (admin).
func (h *CategoryHandler) Update(c echo.Context) error {
	id := c.Param("category_id")
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request body"})
	}

	fields := map[string]any{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Color != "" {
		fields["color"] = req.Color
	}
	if len(fields) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "nothing to update"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Categories.Update(ctx, id, fields); err != nil {
		return repoError(c, err, "category not found")
	}
	updated, err := h.Categories.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "category not found")
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /categories/:category_id (admin).
func (h *CategoryHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Categories.Delete(ctx, c.Param("category_id")); err != nil {
		return repoError(c, err, "category not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Category deleted successfully"})
}
