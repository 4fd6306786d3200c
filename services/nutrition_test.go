package services

import (
	"testing"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"

	"github.com/stretchr/testify/require"
)

func TestAggregateNutritionScalesByWeight(t *testing.T) {
	p := testProduct(250, 10, 5, 30)
	meals := []models.Meal{
		{Products: []models.MealProduct{
			{WeightGrams: 200, Product: p}, // factor 2
			{WeightGrams: 50, Product: p},  // factor 0.5
		}},
	}

	totals := AggregateNutrition(meals)
	require.InDelta(t, 625.0, totals.Calories, 1e-9) // 250*2.5
	require.InDelta(t, 25.0, totals.Proteins, 1e-9)
	require.InDelta(t, 12.5, totals.Fats, 1e-9)
	require.InDelta(t, 75.0, totals.Carbs, 1e-9)
}

func TestAggregateNutritionSkipsUnresolvedProducts(t *testing.T) {
	p := testProduct(100, 1, 1, 1)
	meals := []models.Meal{
		{Products: []models.MealProduct{
			{WeightGrams: 100, Product: p},
			{WeightGrams: 500, Product: nil}, // deleted from catalog
		}},
	}

	totals := AggregateNutrition(meals)
	require.InDelta(t, 100.0, totals.Calories, 1e-9)
	require.InDelta(t, 1.0, totals.Proteins, 1e-9)
}

func TestAggregateNutritionEmptyInput(t *testing.T) {
	require.Equal(t, NutritionTotals{}, AggregateNutrition(nil))
	require.Equal(t, NutritionTotals{}, AggregateNutrition([]models.Meal{}))
}

func TestAggregateNutritionIsPure(t *testing.T) {
	p := testProduct(80, 4, 2, 10)
	meals := []models.Meal{mealOn(1, daysAgo(0), p, 150)}

	first := AggregateNutrition(meals)
	second := AggregateNutrition(meals)
	require.Equal(t, first, second)
}

func TestGroupMealsByDayChronological(t *testing.T) {
	p := testProduct(100, 0, 0, 0)
	meals := []models.Meal{
		mealOn(1, daysAgo(0), p, 100),
		mealOn(1, daysAgo(2), p, 100),
		mealOn(1, daysAgo(2), p, 200), // same day, second meal
		mealOn(1, daysAgo(1), p, 100),
	}

	days := groupMealsByDay(meals)
	require.Len(t, days, 3)
	require.True(t, days[0].Date < days[1].Date)
	require.True(t, days[1].Date < days[2].Date)

	// the two meals two days ago merge into one bucket
	require.InDelta(t, 300.0, days[0].Calories, 1e-9)
	require.InDelta(t, 100.0, days[1].Calories, 1e-9)
	require.InDelta(t, 100.0, days[2].Calories, 1e-9)
}
