package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dalanakids/shop-api/internal/model"
)

// CarouselRepo persists the homepage carousel images.
type CarouselRepo struct{ DB *gorm.DB }

func NewCarouselRepo(db *gorm.DB) *CarouselRepo { return &CarouselRepo{DB: db} }

// List returns all carousel images ordered by slug.
func (r *CarouselRepo) List(ctx context.Context) ([]model.CarouselImage, error) {
	var images []model.CarouselImage
	err := r.DB.WithContext(ctx).Order("slug").Find(&images).Error
	return images, translate(err)
}

// GetByID fetches a carousel image by id.
func (r *CarouselRepo) GetByID(ctx context.Context, id string) (model.CarouselImage, error) {
	var img model.CarouselImage
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&img).Error
	return img, translate(err)
}

// Create inserts a new carousel image.
func (r *CarouselRepo) Create(ctx context.Context, img *model.CarouselImage) error {
	return translate(r.DB.WithContext(ctx).Create(img).Error)
}

// Update applies a partial field map to a carousel image.
func (r *CarouselRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&model.CarouselImage{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a carousel image.
func (r *CarouselRepo) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.CarouselImage{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
