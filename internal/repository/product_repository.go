package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dalanakids/shop-api/internal/model"
)

// ProductRepo persists products together with their image rows and
// size links. Multi-row writes run inside a transaction so a failure
// never leaves an image row orphaned from its product.
type ProductRepo struct{ DB *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{DB: db} }

// List returns all products with images and sizes preloaded.
func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.DB.WithContext(ctx).
		Preload("Images").Preload("Sizes").
		Order("name").Find(&products).Error
	return products, translate(err)
}

// GetByID fetches one product with images and sizes preloaded.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.DB.WithContext(ctx).
		Preload("Images").Preload("Sizes").
		Where("id = ?", id).First(&p).Error
	return p, translate(err)
}

// Create inserts the product, its image rows and its size links in one
// transaction.
func (r *ProductRepo) Create(ctx context.Context, p *model.Product, imageURLs, sizeLabels []string) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Images", "Sizes").Create(p).Error; err != nil {
			return err
		}
		for _, url := range imageURLs {
			img := model.ProductImage{ID: uuid.NewString(), URL: url, ProductID: p.ID}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
			p.Images = append(p.Images, img)
		}
		return linkSizes(tx, p, sizeLabels)
	})
	return translate(err)
}

// Update applies a partial field map and, when imageURLs or sizeLabels
// are non-nil, replaces the image rows and size links wholesale. All of
// it happens in one transaction.
func (r *ProductRepo) Update(ctx context.Context, id string, fields map[string]any, imageURLs, sizeLabels []string) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Product
		if err := tx.Where("id = ?", id).First(&p).Error; err != nil {
			return err
		}
		if len(fields) > 0 {
			if err := tx.Model(&p).Updates(fields).Error; err != nil {
				return err
			}
		}
		if imageURLs != nil {
			if err := tx.Where("product_id = ?", id).Delete(&model.ProductImage{}).Error; err != nil {
				return err
			}
			for _, url := range imageURLs {
				img := model.ProductImage{ID: uuid.NewString(), URL: url, ProductID: id}
				if err := tx.Create(&img).Error; err != nil {
					return err
				}
			}
		}
		if sizeLabels != nil {
			if err := tx.Model(&p).Association("Sizes").Clear(); err != nil {
				return err
			}
			if err := linkSizes(tx, &p, sizeLabels); err != nil {
				return err
			}
		}
		return nil
	})
	return translate(err)
}

// Delete removes the product, its images and its size links.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Product
		if err := tx.Where("id = ?", id).First(&p).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&p).Association("Sizes").Clear(); err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
	return translate(err)
}

// linkSizes resolves size labels against the lookup table and appends
// the association rows. Unknown labels are skipped rather than failing
// the whole write.
func linkSizes(tx *gorm.DB, p *model.Product, labels []string) error {
	if len(labels) == 0 {
		return nil
	}
	var sizes []model.Size
	if err := tx.Where("label IN ?", labels).Find(&sizes).Error; err != nil {
		return err
	}
	if len(sizes) == 0 {
		return nil
	}
	return tx.Model(p).Association("Sizes").Append(&sizes)
}
