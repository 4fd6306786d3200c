package repository

import (
	"context"
	"time"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"

	"gorm.io/gorm"
)

// MealRepository holds the database connection for meal access.
type MealRepository struct {
	DB *gorm.DB
}

func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{DB: db}
}

func (r *MealRepository) Create(ctx context.Context, meal *models.Meal) error {
	return r.DB.WithContext(ctx).Create(meal).Error
}

func (r *MealRepository) GetByID(ctx context.Context, id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := r.DB.WithContext(ctx).
		Preload("Products.Product").
		First(&meal, id).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// MealsInRange returns a user's meals whose date falls in [from, to),
// with product references resolved. Deleted products leave the entry's
// Product nil.
func (r *MealRepository) MealsInRange(ctx context.Context, userID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.DB.WithContext(ctx).
		Preload("Products.Product").
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC").
		Find(&meals).Error
	return meals, err
}

func (r *MealRepository) ListByUser(ctx context.Context, userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.DB.WithContext(ctx).
		Preload("Products.Product").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&meals).Error
	return meals, err
}

func (r *MealRepository) AddProduct(ctx context.Context, entry *models.MealProduct) error {
	return r.DB.WithContext(ctx).Create(entry).Error
}

// RemoveProduct deletes every entry of the given product from the meal and
// reports how many rows were removed.
func (r *MealRepository) RemoveProduct(ctx context.Context, mealID, productID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("meal_id = ? AND product_id = ?", mealID, productID).
		Delete(&models.MealProduct{})
	return res.RowsAffected, res.Error
}

func (r *MealRepository) Delete(ctx context.Context, userID, mealID uint) error {
	if err := r.DB.WithContext(ctx).
		Where("meal_id = ?", mealID).
		Delete(&models.MealProduct{}).Error; err != nil {
		return err
	}
	return r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{}).Error
}
