package models

import "time"

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	DisplayName string    `json:"displayName" gorm:"not null"`
	Color       string    `json:"color" gorm:"not null;default:'blue'"`
	CreatedAt   time.Time `json:"createdAt"`
}
