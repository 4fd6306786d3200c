package services

import (
	"context"
	"sort"
	"time"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"
)

// Empirical conversion from steps to kcal burned.
const stepCaloriesFactor = 0.04

type ActivityService struct {
	measurements MeasurementSource
}

func NewActivityService(measurements MeasurementSource) *ActivityService {
	return &ActivityService{measurements: measurements}
}

type ActivitySummary struct {
	Period         string   `json:"period"`
	TotalSteps     int      `json:"total_steps"`
	BurnedCalories float64  `json:"burned_calories"`
	LastWeight     *float64 `json:"last_weight"`
}

// Summary aggregates IoT measurements over today ("day") or the last 7
// days ("week"): total steps, estimated burned calories and the weight of
// the most recent measurement carrying one.
func (s *ActivityService) Summary(ctx context.Context, userID uint, period string) (*ActivitySummary, error) {
	days := 1
	if period == PeriodWeek {
		days = 7
	}

	now := time.Now().UTC()
	start := dayStartUTC(now).AddDate(0, 0, -(days - 1))
	end := dayStartUTC(now).AddDate(0, 0, 1)

	measurements, err := s.measurements.MeasurementsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	out := &ActivitySummary{Period: period}
	for _, m := range measurements {
		out.TotalSteps += m.StepCount()
	}
	out.BurnedCalories = float64(out.TotalSteps) * stepCaloriesFactor

	// Stable sort keeps equal timestamps deterministic.
	sorted := append([]models.Measurement(nil), measurements...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	for _, m := range sorted {
		if m.Weight != nil {
			out.LastWeight = m.Weight
			break
		}
	}

	return out, nil
}
