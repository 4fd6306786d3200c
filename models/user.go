package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleClient    = "client"
	RoleDietitian = "dietitian"
	RoleAdmin     = "admin"
)

const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

type User struct {
	gorm.Model
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"size:16;not null;default:client"` // client | dietitian | admin

	Age      *int
	HeightCm *float64
	WeightKg *float64
	Language string `gorm:"size:2;default:ua"` // ua | en
	GoalType string `gorm:"size:16"`           // lose | maintain | gain

	DailyCalorieGoal float64 `gorm:"default:0"` // 0 = no goal set
	DietitianID      *uint   `gorm:"index"`     // assigned dietitian, if any

	IsActive bool `gorm:"default:true"` // admins can block accounts
}

// Public is the User without credential fields, safe to return from the API.
type PublicUser struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Age              *int      `json:"age,omitempty"`
	HeightCm         *float64  `json:"height_cm,omitempty"`
	WeightKg         *float64  `json:"weight_kg,omitempty"`
	Language         string    `json:"language"`
	GoalType         string    `json:"goal_type,omitempty"`
	DailyCalorieGoal float64   `json:"daily_calorie_goal"`
	DietitianID      *uint     `json:"dietitian_id,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             u.Role,
		Age:              u.Age,
		HeightCm:         u.HeightCm,
		WeightKg:         u.WeightKg,
		Language:         u.Language,
		GoalType:         u.GoalType,
		DailyCalorieGoal: u.DailyCalorieGoal,
		DietitianID:      u.DietitianID,
		IsActive:         u.IsActive,
		CreatedAt:        u.CreatedAt,
	}
}
