package services

import (
	"context"
	"errors"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"
	"github.com/alinaharnat/healthy-eating-tracking-system/repository"
	"github.com/alinaharnat/healthy-eating-tracking-system/utils"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Profile is the public user record plus derived body metrics.
type Profile struct {
	models.PublicUser
	BMI         float64 `json:"bmi,omitempty"`
	BMICategory string  `json:"bmi_category,omitempty"`
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	p := &Profile{PublicUser: user.Public()}
	if user.HeightCm != nil && user.WeightKg != nil {
		p.BMI = utils.BMI(*user.HeightCm, *user.WeightKg)
		p.BMICategory = utils.BMICategory(p.BMI)
	}
	return p, nil
}

// ProfilePatch carries self-service profile fields. Nil means untouched.
type ProfilePatch struct {
	Name             *string  `json:"name"`
	Language         *string  `json:"language"`
	Age              *int     `json:"age"`
	HeightCm         *float64 `json:"height_cm"`
	WeightKg         *float64 `json:"weight_kg"`
	GoalType         *string  `json:"goal_type"`
	DailyCalorieGoal *float64 `json:"daily_calorie_goal"`
	DietitianID      *uint    `json:"dietitian_id"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, patch ProfilePatch) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Language != nil {
		user.Language = *patch.Language
	}
	if patch.Age != nil {
		user.Age = patch.Age
	}
	if patch.HeightCm != nil {
		user.HeightCm = patch.HeightCm
	}
	if patch.WeightKg != nil {
		user.WeightKg = patch.WeightKg
	}
	if patch.GoalType != nil {
		user.GoalType = *patch.GoalType
	}
	if patch.DailyCalorieGoal != nil {
		user.DailyCalorieGoal = *patch.DailyCalorieGoal
	}
	if patch.DietitianID != nil {
		user.DietitianID = patch.DietitianID
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// ListPatients returns the clients assigned to a dietitian.
func (s *UserService) ListPatients(ctx context.Context, dietitianID uint) ([]models.PublicUser, error) {
	users, err := s.users.ListByDietitian(ctx, dietitianID)
	if err != nil {
		return nil, err
	}
	return publicUsers(users), nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return publicUsers(users), nil
}

func publicUsers(users []models.User) []models.PublicUser {
	out := make([]models.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out
}
