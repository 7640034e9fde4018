package models

import "time"

// Category is a storefront navigation bucket. The slug is derived from
// the name and regenerated whenever the name changes.
type Category struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Category) TableName() string {
	return "categories"
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required" example:"Camisetas"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}
