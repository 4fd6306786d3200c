package repository

import (
	"context"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Save(user).Error
}

func (r *UserRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&models.User{}, id)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) ListByDietitian(ctx context.Context, dietitianID uint) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).
		Where("dietitian_id = ?", dietitianID).
		Order("id ASC").
		Find(&users).Error
	return users, err
}

// DailyCalorieGoal returns the user's configured goal; 0 means no goal.
func (r *UserRepository) DailyCalorieGoal(ctx context.Context, userID uint) (float64, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).
		Select("daily_calorie_goal").
		First(&user, userID).Error; err != nil {
		return 0, err
	}
	return user.DailyCalorieGoal, nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", role).
		Count(&n).Error
	return n, err
}
