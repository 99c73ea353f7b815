package models

import "time"

// Fixed clothing categories.
const (
	CategoryTrouser     = "Trouser"
	CategoryFullShirt   = "Full Shirt"
	CategoryJacket      = "Jacket"
	CategorySweater     = "Sweater"
	CategoryBlazer      = "Blazer"
	CategoryCoat        = "Coat"
	CategoryAccessories = "Accessories"
)

var Categories = []string{
	CategoryTrouser,
	CategoryFullShirt,
	CategoryJacket,
	CategorySweater,
	CategoryBlazer,
	CategoryCoat,
	CategoryAccessories,
}

// IsValidCategory reports whether c is one of the fixed catalog categories.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type ProductColor struct {
	Name    string `json:"name"`
	HexCode string `json:"hexCode"`
}

type Product struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            string         `gorm:"not null" json:"title"`
	ShortDescription string         `gorm:"size:200;not null" json:"shortDescription"`
	FullDescription  string         `gorm:"not null" json:"fullDescription"`
	Price            float64        `gorm:"not null;check:price >= 0" json:"price"`
	DiscountPrice    float64        `gorm:"default:0" json:"discountPrice"`
	Category         string         `gorm:"type:VARCHAR(20);not null" json:"category"`
	Sizes            []string       `gorm:"serializer:json" json:"sizes"`
	Colors           []ProductColor `gorm:"serializer:json" json:"colors"`
	Images           []string       `gorm:"serializer:json" json:"images"`
	Stock            int            `gorm:"default:0;check:stock >= 0" json:"stock"`
	Featured         bool           `gorm:"default:false" json:"featured"`
	CreatedByID      *uint          `json:"createdBy,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}
