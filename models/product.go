package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// ProductSize is a per-size stock counter. Stock never goes below
// zero — checkout decrements clamp at 0.
type ProductSize struct {
	Size  string `json:"size" binding:"required" example:"M"`
	Stock int    `json:"stock" binding:"min=0" example:"10"`
}

// ProductColor is an optional color variant with its own image list.
type ProductColor struct {
	Name   string   `json:"name" binding:"required" example:"Preto"`
	Hex    string   `json:"hex" example:"#000000"`
	Images []string `json:"images,omitempty"`
}

// Custom slice types so GORM can round-trip them through jsonb columns.
type (
	SizesList  []ProductSize
	ColorsList []ProductColor
	StringList []string
)

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string     `json:"name" gorm:"not null;index"`
	Brand        string     `json:"brand"`
	Price        float64    `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Images       StringList `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Category     string     `json:"category"`
	CategoryID   *int64     `json:"category_id,omitempty" gorm:"index"`
	Sizes        SizesList  `json:"sizes" gorm:"type:jsonb;not null;default:'[]'"`
	Colors       ColorsList `json:"colors,omitempty" gorm:"type:jsonb;not null;default:'[]'"`
	Description  string     `json:"description"`
	Slug         string     `json:"slug" gorm:"not null;index"`
	CollectionID *int64     `json:"collection_id,omitempty" gorm:"index"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name         string         `json:"name" binding:"required" example:"Camiseta Oversized"`
	Brand        string         `json:"brand"`
	Price        float64        `json:"price" binding:"required,min=0" example:"99.90"`
	Images       []string       `json:"images" binding:"required,min=1"`
	Category     string         `json:"category"`
	CategoryID   *int64         `json:"category_id"`
	Sizes        []ProductSize  `json:"sizes" binding:"required,dive"`
	Colors       []ProductColor `json:"colors" binding:"omitempty,dive"`
	Description  string         `json:"description"`
	CollectionID *int64         `json:"collection_id"`
}

type UpdateProductRequest struct {
	Name         *string         `json:"name"`
	Brand        *string         `json:"brand"`
	Price        *float64        `json:"price" binding:"omitempty,min=0"`
	Images       *[]string       `json:"images"`
	Category     *string         `json:"category"`
	CategoryID   *int64          `json:"category_id"`
	Sizes        *[]ProductSize  `json:"sizes" binding:"omitempty,dive"`
	Colors       *[]ProductColor `json:"colors" binding:"omitempty,dive"`
	Description  *string         `json:"description"`
	CollectionID *int64          `json:"collection_id"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom slice types)
// ═══════════════════════════════════════════════════════════

func (s *SizesList) Scan(value interface{}) error {
	if value == nil {
		*s = make(SizesList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan SizesList")
	}
	return json.Unmarshal(bytes, s)
}

func (s SizesList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]ProductSize{})
	}
	return json.Marshal(s)
}

func (c *ColorsList) Scan(value interface{}) error {
	if value == nil {
		*c = make(ColorsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ColorsList")
	}
	return json.Unmarshal(bytes, c)
}

func (c ColorsList) Value() (driver.Value, error) {
	if c == nil {
		return json.Marshal([]ProductColor{})
	}
	return json.Marshal(c)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = make(StringList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringList")
	}
	return json.Unmarshal(bytes, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}
