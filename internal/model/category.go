package model

// Category mirrors the `categories` table. Products reference a
// category by its unique name. Color carries the storefront accent
// class for the category chip.
type Category struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"size:40;uniqueIndex;not null" json:"name"`
	Color string `gorm:"size:40;not null;default:'bg-blue-500'" json:"color"`
}

func (Category) TableName() string { return "categories" }
