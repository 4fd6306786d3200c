package services

import (
	"context"
	"testing"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"

	"github.com/stretchr/testify/require"
)

func TestDailySummaryStatusClassification(t *testing.T) {
	p := testProduct(100, 0, 0, 0)
	cases := []struct {
		name        string
		weightGrams float64
		goal        float64
		status      string
	}{
		{"reached", 2000, 2000, StatusReached},
		{"exceeded", 2100, 2000, StatusExceeded},
		{"below", 1900, 2000, StatusBelow},
		{"no goal", 2000, 0, StatusNoGoal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meals := &fakeMealSource{meals: []models.Meal{
				mealOn(1, daysAgo(0), p, tc.weightGrams), // 100 kcal/100g → weight = kcal
			}}
			svc := NewAnalyticsService(meals, &fakeGoalSource{goal: tc.goal})

			out, err := svc.DailySummary(context.Background(), 1, daysAgo(0))
			require.NoError(t, err)
			require.Equal(t, tc.status, out.Status)
			require.InDelta(t, tc.weightGrams, out.Totals.Calories, 1e-9)
			require.Equal(t, tc.goal, out.Goal)
		})
	}
}

func TestDailySummaryOnlyCountsRequestedDay(t *testing.T) {
	p := testProduct(100, 0, 0, 0)
	meals := &fakeMealSource{meals: []models.Meal{
		mealOn(1, daysAgo(0), p, 500),
		mealOn(1, daysAgo(1), p, 900), // previous day, must not count
	}}
	svc := NewAnalyticsService(meals, &fakeGoalSource{})

	out, err := svc.DailySummary(context.Background(), 1, daysAgo(0))
	require.NoError(t, err)
	require.InDelta(t, 500.0, out.Totals.Calories, 1e-9)
}

func TestPeriodAnalyticsEmptyWindow(t *testing.T) {
	svc := NewAnalyticsService(&fakeMealSource{}, &fakeGoalSource{goal: 2000})

	out, err := svc.PeriodAnalytics(context.Background(), 1, PeriodWeek)
	require.NoError(t, err)
	require.Zero(t, out.AverageCalories)
	require.Zero(t, out.MinCalories)
	require.Zero(t, out.MaxCalories)
	require.Nil(t, out.CriticalDay)
	require.Empty(t, out.Days)
	require.NotNil(t, out.Days)
}

func TestPeriodAnalyticsStatistics(t *testing.T) {
	p := testProduct(100, 0, 0, 0)
	meals := &fakeMealSource{meals: []models.Meal{
		mealOn(1, daysAgo(2), p, 1800),
		mealOn(1, daysAgo(1), p, 2400),
		mealOn(1, daysAgo(0), p, 1500),
	}}
	svc := NewAnalyticsService(meals, &fakeGoalSource{})

	out, err := svc.PeriodAnalytics(context.Background(), 1, PeriodWeek)
	require.NoError(t, err)
	require.Len(t, out.Days, 3)
	require.InDelta(t, 1900.0, out.AverageCalories, 1e-9)
	require.InDelta(t, 1500.0, out.MinCalories, 1e-9)
	require.InDelta(t, 2400.0, out.MaxCalories, 1e-9)
	require.NotNil(t, out.CriticalDay)
	require.Equal(t, dayKeyUTC(daysAgo(1)), out.CriticalDay.Date)
}

func TestPeriodAnalyticsCriticalDayTieBreak(t *testing.T) {
	p := testProduct(100, 0, 0, 0)
	meals := &fakeMealSource{meals: []models.Meal{
		mealOn(1, daysAgo(3), p, 2200),
		mealOn(1, daysAgo(1), p, 2200), // same max, later day
		mealOn(1, daysAgo(0), p, 1000),
	}}
	svc := NewAnalyticsService(meals, &fakeGoalSource{})

	out, err := svc.PeriodAnalytics(context.Background(), 1, PeriodWeek)
	require.NoError(t, err)
	require.NotNil(t, out.CriticalDay)
	// the earlier of the tied days wins
	require.Equal(t, dayKeyUTC(daysAgo(3)), out.CriticalDay.Date)
}

func TestPeriodAnalyticsMonthWindow(t *testing.T) {
	p := testProduct(100, 0, 0, 0)
	meals := &fakeMealSource{meals: []models.Meal{
		mealOn(1, daysAgo(20), p, 1000), // outside week, inside month
		mealOn(1, daysAgo(0), p, 1000),
	}}
	svc := NewAnalyticsService(meals, &fakeGoalSource{})

	week, err := svc.PeriodAnalytics(context.Background(), 1, PeriodWeek)
	require.NoError(t, err)
	require.Len(t, week.Days, 1)

	month, err := svc.PeriodAnalytics(context.Background(), 1, PeriodMonth)
	require.NoError(t, err)
	require.Len(t, month.Days, 2)
}
