package services

import (
	"context"
	"time"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"
)

// Data-access surface the analytics and recommendation services depend
// on. The repository package satisfies these against PostgreSQL; tests
// use in-memory fakes.

type MealSource interface {
	// MealsInRange returns a user's meals with date in [from, to),
	// product references resolved where possible.
	MealsInRange(ctx context.Context, userID uint, from, to time.Time) ([]models.Meal, error)
}

type MeasurementSource interface {
	MeasurementsInRange(ctx context.Context, userID uint, from, to time.Time) ([]models.Measurement, error)
}

type GoalSource interface {
	// DailyCalorieGoal returns the user's goal; 0 means no goal set.
	DailyCalorieGoal(ctx context.Context, userID uint) (float64, error)
}

type RecommendationStore interface {
	Create(ctx context.Context, rec *models.Recommendation) error
	ListByUser(ctx context.Context, userID uint) ([]models.Recommendation, error)
	Delete(ctx context.Context, id uint) (int64, error)
}
