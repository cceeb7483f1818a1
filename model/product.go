package model

import "time"

type Product struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string  `gorm:"not null" json:"name"`
	CategoryID uint    `gorm:"index" json:"category_id"`
	Status     int     `gorm:"default:1" json:"status"`
	Stock      int     `json:"stock"`
	Mrp        float64 `json:"mrp"`
	Weight     float64 `json:"weight"`
	// Loyalty points earned on purchase, derived from the price and
	// recalculated whenever the price changes
	SvpPoints float64 `json:"svp_points"`
	ImageURL  string  `json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Category *ProductCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Reviews  []Review         `gorm:"foreignKey:ProductID" json:"reviews,omitempty"`
}
