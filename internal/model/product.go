package model

// Product mirrors the `products` table. A product belongs to a category
// by name, owns its image rows and is linked to sizes through the
// product_sizes join table.
type Product struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Name         string         `gorm:"size:40;uniqueIndex;not null" json:"name"`
	Price        float64        `gorm:"not null;default:0" json:"price"`
	Stock        int            `gorm:"not null;default:0" json:"stock"`
	Brand        string         `gorm:"size:40;default:'Dalana Kids'" json:"brand"`
	Description  string         `gorm:"size:250" json:"description"`
	CategoryName string         `gorm:"size:40;not null;default:'Todos'" json:"category_name"`
	Images       []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Sizes        []Size         `gorm:"many2many:product_sizes" json:"sizes"`
}

func (Product) TableName() string { return "products" }

// ProductImage is one hosted image attached to a product.
type ProductImage struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	URL       string `gorm:"type:text;not null" json:"url"`
	ProductID string `gorm:"size:36;not null;index" json:"-"`
}

func (ProductImage) TableName() string { return "product_images" }

// Size is a lookup row for the fixed set of product sizes.
type Size struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Label string `gorm:"size:16;uniqueIndex;not null" json:"size"`
}

func (Size) TableName() string { return "product_sizes_lookup" }
