package models

import (
	"time"

	"gorm.io/gorm"
)

// Measurement is a point-in-time IoT sample (fitness tracker, scale).
// Optional readings are pointers so absent values survive round-trips.
type Measurement struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	Timestamp time.Time `gorm:"index;not null"`
	Pulse     *int
	Steps     *int
	Weight    *float64 // kg
}

// StepCount treats an absent steps reading as zero.
func (m *Measurement) StepCount() int {
	if m.Steps == nil {
		return 0
	}
	return *m.Steps
}
