package models

import "time"

// Collection groups products for the storefront (e.g. "Verão 2025").
// Products reference it through their collection_id.
type Collection struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"not null;index"`
	Image       string    `json:"image"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Collection) TableName() string {
	return "collections"
}

type CollectionRequest struct {
	Name        string  `json:"name" binding:"required" example:"Verão 2025"`
	Image       string  `json:"image" binding:"required"`
	Description *string `json:"description"`
}

type UpdateCollectionRequest struct {
	Name        *string `json:"name"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
}
