package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dalanakids/shop-api/internal/model"
)

// CategoryRepo persists product categories.
type CategoryRepo struct{ DB *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{DB: db} }

// List returns all categories ordered by name.
func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, translate(err)
}

// GetByID fetches a category by id.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (model.Category, error) {
	var c model.Category
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, translate(err)
}

// Create inserts a new category.
func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) error {
	return translate(r.DB.WithContext(ctx).Create(c).Error)
}

// Update applies a partial field map to a category.
func (r *CategoryRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	res := r.DB.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a category.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.Category{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
