package model

// CarouselImage mirrors the `carousel` table backing the homepage
// carousel. Slug is the unique ordering handle used by the storefront.
type CarouselImage struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	ImgURL string `gorm:"type:text;not null" json:"img_url"`
	Slug   string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
}

func (CarouselImage) TableName() string { return "carousel" }
