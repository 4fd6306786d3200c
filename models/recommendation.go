package models

import "gorm.io/gorm"

// Recommendation is an advisory for a user. DietitianID is nil for
// system-generated recommendations and set for dietitian-authored ones.
type Recommendation struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	DietitianID *uint  `gorm:"index"`
	Message     string `gorm:"type:text;not null"`
}
