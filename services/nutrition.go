package services

import (
	"sort"
	"time"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"
)

// NutritionTotals is the aggregated nutrient sum over a set of meals.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Fats     float64 `json:"fats"`
	Carbs    float64 `json:"carbs"`
}

// AggregateNutrition sums nutrient values over every resolved product
// entry, scaled by the entry's weight against the per-100g profile.
// Entries whose product reference cannot be resolved are skipped: stale
// references must never fail a whole aggregation.
func AggregateNutrition(meals []models.Meal) NutritionTotals {
	var totals NutritionTotals
	for _, meal := range meals {
		for _, entry := range meal.Products {
			p := entry.Product
			if p == nil {
				continue
			}
			factor := entry.WeightGrams / 100
			totals.Calories += p.Calories * factor
			totals.Proteins += p.Proteins * factor
			totals.Fats += p.Fats * factor
			totals.Carbs += p.Carbs * factor
		}
	}
	return totals
}

// DayNutrition is one calendar day's totals. Date is the UTC day key.
type DayNutrition struct {
	Date string `json:"date"` // YYYY-MM-DD
	NutritionTotals
}

// groupMealsByDay partitions meals by UTC calendar day, aggregates each
// partition and returns the days in chronological order.
func groupMealsByDay(meals []models.Meal) []DayNutrition {
	byDay := make(map[string]NutritionTotals)
	for _, meal := range meals {
		key := dayKeyUTC(meal.Date)
		t := byDay[key]
		mt := AggregateNutrition([]models.Meal{meal})
		t.Calories += mt.Calories
		t.Proteins += mt.Proteins
		t.Fats += mt.Fats
		t.Carbs += mt.Carbs
		byDay[key] = t
	}

	days := make([]DayNutrition, 0, len(byDay))
	for key, totals := range byDay {
		days = append(days, DayNutrition{Date: key, NutritionTotals: totals})
	}
	// day keys are YYYY-MM-DD, lexicographic order is chronological
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

func dayKeyUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func dayStartUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
