package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Meal is one eating event. Date identifies the calendar day the meal
// counts toward; the time-of-day portion is ignored for day bucketing.
type Meal struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Date     time.Time `gorm:"index;not null"`
	Type     string    `gorm:"size:16;not null"` // breakfast | lunch | dinner | snack
	Products []MealProduct
}

// MealProduct is a weighted quantity of a product within a meal.
// Product is nil when the referenced catalog entry no longer exists;
// such entries are skipped during aggregation.
type MealProduct struct {
	gorm.Model
	MealID      uint     `gorm:"index;not null"`
	ProductID   uint     `gorm:"not null"`
	WeightGrams float64  `gorm:"not null"`
	Product     *Product `gorm:"foreignKey:ProductID"`
}
