package models

import "gorm.io/gorm"

// Product is a catalog entry with nutrient values normalized per 100 g.
type Product struct {
	gorm.Model
	Name           string  `gorm:"not null"`
	NormalizedName string  `gorm:"uniqueIndex;not null" json:"-"`
	Calories       float64 `gorm:"not null"` // kcal per 100 g
	Proteins       float64 `gorm:"default:0"`
	Fats           float64 `gorm:"default:0"`
	Carbs          float64 `gorm:"default:0"`
}
