package services

import (
	"context"
	"time"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"
)

// In-memory stand-ins for the repository-backed stores.

type fakeMealSource struct {
	meals []models.Meal
	err   error
}

func (f *fakeMealSource) MealsInRange(_ context.Context, userID uint, from, to time.Time) ([]models.Meal, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Meal
	for _, m := range f.meals {
		if m.UserID == userID && !m.Date.Before(from) && m.Date.Before(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeMeasurementSource struct {
	measurements []models.Measurement
	err          error
}

func (f *fakeMeasurementSource) MeasurementsInRange(_ context.Context, userID uint, from, to time.Time) ([]models.Measurement, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Measurement
	for _, m := range f.measurements {
		if m.UserID == userID && !m.Timestamp.Before(from) && m.Timestamp.Before(to) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeGoalSource struct {
	goal float64
	err  error
}

func (f *fakeGoalSource) DailyCalorieGoal(context.Context, uint) (float64, error) {
	return f.goal, f.err
}

type fakeRecStore struct {
	created  []models.Recommendation
	failAt   int // fail the Nth create (1-based); 0 = never
	failWith error
}

func (f *fakeRecStore) Create(_ context.Context, rec *models.Recommendation) error {
	if f.failAt > 0 && len(f.created)+1 == f.failAt {
		return f.failWith
	}
	rec.ID = uint(len(f.created) + 1)
	f.created = append(f.created, *rec)
	return nil
}

func (f *fakeRecStore) ListByUser(_ context.Context, userID uint) ([]models.Recommendation, error) {
	var out []models.Recommendation
	for _, r := range f.created {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecStore) Delete(_ context.Context, id uint) (int64, error) {
	for i, r := range f.created {
		if r.ID == id {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// ---- fixture helpers ----

func testProduct(calories, proteins, fats, carbs float64) *models.Product {
	return &models.Product{
		Name:     "test product",
		Calories: calories,
		Proteins: proteins,
		Fats:     fats,
		Carbs:    carbs,
	}
}

// mealOn builds a meal on the given day with a single resolved entry.
func mealOn(userID uint, date time.Time, p *models.Product, weightGrams float64) models.Meal {
	return models.Meal{
		UserID: userID,
		Date:   date,
		Type:   models.MealLunch,
		Products: []models.MealProduct{
			{WeightGrams: weightGrams, Product: p},
		},
	}
}

// daysAgo returns a UTC timestamp n days before today, at noon so day
// bucketing is unambiguous.
func daysAgo(n int) time.Time {
	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -n)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
