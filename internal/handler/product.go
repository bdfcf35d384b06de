package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dalanakids/shop-api/internal/model"
	"github.com/dalanakids/shop-api/internal/repository"
)

// maxProductImages caps how many images one product may carry.
const maxProductImages = 5

// defaultCategory is the catch-all category products fall into when
// none is given.
const defaultCategory = "Todos"

// ProductHandler exposes the product catalog.
type ProductHandler struct {
	Products      *repository.ProductRepo
	ImagesService string
}

func NewProductHandler(products *repository.ProductRepo, imagesService string) *ProductHandler {
	return &ProductHandler{Products: products, ImagesService: imagesService}
}

type productReq struct {
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Stock        int      `json:"stock"`
	Brand        string   `json:"brand"`
	Description  string   `json:"description"`
	CategoryName string   `json:"category_name"`
	Images       []string `json:"images"`
	Sizes        []string `json:"sizes"`
}

type productUpdateReq struct {
	Name         *string  `json:"name"`
	Price        *float64 `json:"price"`
	Stock        *int     `json:"stock"`
	Brand        *string  `json:"brand"`
	Description  *string  `json:"description"`
	CategoryName *string  `json:"category_name"`
	Images       []string `json:"images"`
	Sizes        []string `json:"sizes"`
}

// List handles GET /products (public).
func (h *ProductHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	products, err := h.Products.List(ctx)
	if err != nil {
		return repoError(c, err, "no products found")
	}
	return c.JSON(http.StatusOK, products)
}

// GetByID handles GET /products/:product_id (public).
func (h *ProductHandler) GetByID(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Products.GetByID(ctx, c.Param("product_id"))
	if err != nil {
		return repoError(c, err, "product not found")
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /products (admin).
func (h *ProductHandler) Create(c echo.Context) error {
	var req productReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "name is required"})
	}
	if len(req.Images) > maxProductImages {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "products can't have more than 5 images"})
	}
	if req.CategoryName == "" {
		req.CategoryName = defaultCategory
	}

	p := model.Product{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Price:        req.Price,
		Stock:        req.Stock,
		Brand:        req.Brand,
		Description:  req.Description,
		CategoryName: req.CategoryName,
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Products.Create(ctx, &p, req.Images, req.Sizes); err != nil {
		return repoError(c, err, "product not found")
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Product created successfully", "id": p.ID})
}

// Update handles PUT /products/:product_id (admin). Only the fields
// present in the payload change; a non-nil images or sizes list
// replaces the existing set wholesale.
func (h *ProductHandler) Update(c echo.Context) error {
	id := c.Param("product_id")
	var req productUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request body"})
	}
	if len(req.Images) > maxProductImages {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "products can't have more than 5 images"})
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Stock != nil {
		fields["stock"] = *req.Stock
	}
	if req.Brand != nil {
		fields["brand"] = *req.Brand
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.CategoryName != nil && *req.CategoryName != "" {
		fields["category_name"] = *req.CategoryName
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Products.Update(ctx, id, fields, req.Images, req.Sizes); err != nil {
		return repoError(c, err, "product not found")
	}
	updated, err := h.Products.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "product not found")
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /products/:product_id (admin).
func (h *ProductHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Products.Delete(ctx, c.Param("product_id")); err != nil {
		return repoError(c, err, "product not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}

// ImageHost handles GET /products/image_host (admin): the base URL the
// storefront uploads product images to.
func (h *ProductHandler) ImageHost(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"image_host": h.ImagesService})
}
