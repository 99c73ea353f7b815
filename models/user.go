package models

import "time"

// Identity providers a user account can be bound to.
const (
	ProviderCredentials = "credentials"
	ProviderGoogle      = "google"
)

type User struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Password  string     `json:"-"` // bcrypt hash, empty for google-only accounts
	Image     string     `json:"image"`
	Provider  string     `gorm:"type:VARCHAR(20);default:'credentials'" json:"provider"`
	Cart      []CartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
