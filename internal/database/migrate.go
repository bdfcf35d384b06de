package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dalanakids/shop-api/internal/model"
)

// sizeLabels is the fixed catalog of product sizes seeded into the
// lookup table.
var sizeLabels = []string{"XS", "S", "M", "L", "XL", "XXL"}

// Migrate creates or updates the schema for every entity and seeds the
// lookup data the storefront expects: the size labels and the default
// "Todos" category.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.ResetPasswordToken{},
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.Size{},
		&model.CarouselImage{},
	); err != nil {
		return err
	}

	for _, label := range sizeLabels {
		size := model.Size{Label: label}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&size).Error; err != nil {
			return err
		}
	}

	todos := model.Category{ID: uuid.NewString(), Name: "Todos", Color: "bg-blue-500"}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&todos).Error; err != nil {
		return err
	}
	return nil
}
