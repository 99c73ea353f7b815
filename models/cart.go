package models

import "time"

// CartItem is one line of a user's cart. A line is unique per
// (product, size, color); adding the same combination again merges quantities.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"-"`
	ProductID uint      `gorm:"not null" json:"productId"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	AddedAt   time.Time `json:"addedAt"`
}
