package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dalanakids/shop-api/internal/model"
	"github.com/dalanakids/shop-api/internal/repository"
)

// CarouselHandler exposes CRUD for the homepage carousel.
type CarouselHandler struct {
	Carousel *repository.CarouselRepo
}

func NewCarouselHandler(carousel *repository.CarouselRepo) *CarouselHandler {
	return &CarouselHandler{Carousel: carousel}
}

type carouselReq struct {
	ImgURL string `json:"img_url"`
	Slug   string `json:"slug"`
}

// List handles GET /carousel (public).
func (h *CarouselHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	images, err := h.Carousel.List(ctx)
	if err != nil {
		return repoError(c, err, "no carousel images found")
	}
	return c.JSON(http.StatusOK, images)
}

// GetByID handles GET /carousel/:image_id (admin).
func (h *CarouselHandler) GetByID(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	img, err := h.Carousel.GetByID(ctx, c.Param("image_id"))
	if err != nil {
		return repoError(c, err, "image not found")
	}
	return c.JSON(http.StatusOK, img)
}

// Create handles POST /carousel (admin).
func (h *CarouselHandler) Create(c echo.Context) error {
	var req carouselReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request body"})
	}
	if req.ImgURL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "image url is required"})
	}
	if req.Slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "slug is required"})
	}

	img := model.CarouselImage{ID: uuid.NewString(), ImgURL: req.ImgURL, Slug: req.Slug}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Carousel.Create(ctx, &img); err != nil {
		return repoError(c, err, "image not found")
	}
	return c.JSON(http.StatusCreated, img)
}

// Update handles PUT /carousel/:image_id (admin).
func (h *CarouselHandler) Update(c echo.Context) error {
	id := c.Param("image_id")
	var req carouselReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request body"})
	}
	if req.ImgURL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "image url is required"})
	}

	fields := map[string]any{"img_url": req.ImgURL}
	if req.Slug != "" {
		fields["slug"] = req.Slug
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Carousel.Update(ctx, id, fields); err != nil {
		return repoError(c, err, "image not found")
	}
	updated, err := h.Carousel.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "image not found")
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /carousel/:image_id (admin).
func (h *CarouselHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Carousel.Delete(ctx, c.Param("image_id")); err != nil {
		return repoError(c, err, "image not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Image deleted successfully"})
}
