package services

import (
	"context"
	"errors"
	"time"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"
	"github.com/alinaharnat/healthy-eating-tracking-system/repository"

	"gorm.io/gorm"
)

var (
	ErrMealNotFound    = errors.New("meal not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidMealType = errors.New("invalid meal type")
	ErrInvalidWeight   = errors.New("weightGrams must be positive")
	ErrEmptyMeal       = errors.New("meal must contain at least one product")
)

type MealService struct {
	meals    *repository.MealRepository
	products *repository.ProductRepository
}

func NewMealService(meals *repository.MealRepository, products *repository.ProductRepository) *MealService {
	return &MealService{meals: meals, products: products}
}

type MealEntryInput struct {
	ProductID   uint    `json:"product_id" binding:"required"`
	WeightGrams float64 `json:"weight_grams" binding:"required"`
}

func (s *MealService) AddMeal(ctx context.Context, userID uint, date time.Time, mealType string, entries []MealEntryInput) (*models.Meal, error) {
	if !models.ValidMealType(mealType) {
		return nil, ErrInvalidMealType
	}
	if len(entries) == 0 {
		return nil, ErrEmptyMeal
	}
	for _, e := range entries {
		if e.WeightGrams <= 0 {
			return nil, ErrInvalidWeight
		}
		if _, err := s.products.GetByID(ctx, e.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}
	}

	meal := &models.Meal{UserID: userID, Date: date, Type: mealType}
	for _, e := range entries {
		meal.Products = append(meal.Products, models.MealProduct{
			ProductID:   e.ProductID,
			WeightGrams: e.WeightGrams,
		})
	}
	if err := s.meals.Create(ctx, meal); err != nil {
		return nil, err
	}
	return s.meals.GetByID(ctx, meal.ID)
}

// AddProduct appends one weighted product entry to a meal the user owns.
func (s *MealService) AddProduct(ctx context.Context, userID, mealID uint, entry MealEntryInput) (*models.Meal, error) {
	if entry.WeightGrams <= 0 {
		return nil, ErrInvalidWeight
	}

	meal, err := s.ownedMeal(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}

	if _, err := s.products.GetByID(ctx, entry.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	mp := &models.MealProduct{
		MealID:      meal.ID,
		ProductID:   entry.ProductID,
		WeightGrams: entry.WeightGrams,
	}
	if err := s.meals.AddProduct(ctx, mp); err != nil {
		return nil, err
	}
	return s.meals.GetByID(ctx, meal.ID)
}

// RemoveProduct drops every entry of the product from the meal.
func (s *MealService) RemoveProduct(ctx context.Context, userID, mealID, productID uint) (*models.Meal, error) {
	meal, err := s.ownedMeal(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}

	if _, err := s.meals.RemoveProduct(ctx, meal.ID, productID); err != nil {
		return nil, err
	}
	return s.meals.GetByID(ctx, meal.ID)
}

// MealsByDate lists the user's meals for one UTC calendar day.
func (s *MealService) MealsByDate(ctx context.Context, userID uint, date time.Time) ([]models.Meal, error) {
	start := dayStartUTC(date)
	return s.meals.MealsInRange(ctx, userID, start, start.AddDate(0, 0, 1))
}

func (s *MealService) ListMeals(ctx context.Context, userID uint) ([]models.Meal, error) {
	return s.meals.ListByUser(ctx, userID)
}

func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uint) error {
	if _, err := s.ownedMeal(ctx, userID, mealID); err != nil {
		return err
	}
	return s.meals.Delete(ctx, userID, mealID)
}

func (s *MealService) ownedMeal(ctx context.Context, userID, mealID uint) (*models.Meal, error) {
	meal, err := s.meals.GetByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	if meal.UserID != userID {
		return nil, ErrMealNotFound
	}
	return meal, nil
}
