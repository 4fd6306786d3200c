package services

import (
	"context"
	"time"
)

const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

const (
	StatusNoGoal   = "no goal set"
	StatusExceeded = "exceeded"
	StatusReached  = "reached"
	StatusBelow    = "below"
)

type AnalyticsService struct {
	meals MealSource
	goals GoalSource
}

func NewAnalyticsService(meals MealSource, goals GoalSource) *AnalyticsService {
	return &AnalyticsService{meals: meals, goals: goals}
}

type DailySummary struct {
	Date   string          `json:"date"` // YYYY-MM-DD, UTC
	Totals NutritionTotals `json:"totals"`
	Goal   float64         `json:"goal"`
	Status string          `json:"status"`
}

// DailySummary aggregates one UTC calendar day and classifies the result
// against the user's calorie goal.
func (s *AnalyticsService) DailySummary(ctx context.Context, userID uint, date time.Time) (*DailySummary, error) {
	start := dayStartUTC(date)
	end := start.AddDate(0, 0, 1)

	meals, err := s.meals.MealsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	totals := AggregateNutrition(meals)

	goal, err := s.goals.DailyCalorieGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DailySummary{
		Date:   dayKeyUTC(start),
		Totals: totals,
		Goal:   goal,
		Status: classifyCalories(totals.Calories, goal),
	}, nil
}

func classifyCalories(calories, goal float64) string {
	switch {
	case goal == 0:
		return StatusNoGoal
	case calories > goal:
		return StatusExceeded
	case calories == goal:
		return StatusReached
	default:
		return StatusBelow
	}
}

type PeriodAnalytics struct {
	Period          string         `json:"period"`
	AverageCalories float64        `json:"average_calories"`
	MinCalories     float64        `json:"min_calories"`
	MaxCalories     float64        `json:"max_calories"`
	CriticalDay     *DayNutrition  `json:"critical_day"`
	Days            []DayNutrition `json:"days"`
}

// PeriodAnalytics buckets the user's meals by calendar day over a rolling
// window ending today ("month" = 30 days, anything else = 7) and derives
// per-day totals plus summary statistics. The critical day is the day with
// the strictly highest calorie total; on a tie the earlier day wins.
func (s *AnalyticsService) PeriodAnalytics(ctx context.Context, userID uint, period string) (*PeriodAnalytics, error) {
	days := 7
	if period == PeriodMonth {
		days = 30
	}

	now := time.Now().UTC()
	start := dayStartUTC(now).AddDate(0, 0, -(days - 1))
	end := dayStartUTC(now).AddDate(0, 0, 1)

	meals, err := s.meals.MealsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	dayTotals := groupMealsByDay(meals)
	out := &PeriodAnalytics{Period: period, Days: dayTotals}
	if len(dayTotals) == 0 {
		out.Days = []DayNutrition{}
		return out, nil
	}

	var sum float64
	critical := 0
	out.MinCalories = dayTotals[0].Calories
	out.MaxCalories = dayTotals[0].Calories
	for i, d := range dayTotals {
		sum += d.Calories
		if d.Calories < out.MinCalories {
			out.MinCalories = d.Calories
		}
		if d.Calories > out.MaxCalories {
			out.MaxCalories = d.Calories
		}
		if d.Calories > dayTotals[critical].Calories {
			critical = i
		}
	}
	out.AverageCalories = sum / float64(len(dayTotals))
	out.CriticalDay = &dayTotals[critical]
	return out, nil
}
