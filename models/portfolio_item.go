package models

import "time"

// PortfolioItem is a single showcased work sample. The category field is a
// denormalized reference to Category.Name and is not enforced at write time.
type PortfolioItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null;index"`
	Image       string    `json:"image" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PortfolioItemUpdate carries a partial update; nil fields are left as-is.
type PortfolioItemUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
}
