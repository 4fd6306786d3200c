package services

import (
	"context"
	"testing"
	"time"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"

	"github.com/stretchr/testify/require"
)

func measurementAt(userID uint, ts time.Time, steps int, weight *float64) models.Measurement {
	return models.Measurement{
		UserID:    userID,
		Timestamp: ts,
		Pulse:     intPtr(70),
		Steps:     intPtr(steps),
		Weight:    weight,
	}
}

func TestActivitySummaryTotalsAndBurnedCalories(t *testing.T) {
	src := &fakeMeasurementSource{measurements: []models.Measurement{
		measurementAt(1, daysAgo(0), 1000, nil),
		measurementAt(1, daysAgo(0).Add(time.Hour), 2000, nil),
		measurementAt(1, daysAgo(0).Add(2*time.Hour), 1500, nil),
	}}
	svc := NewActivityService(src)

	out, err := svc.Summary(context.Background(), 1, PeriodDay)
	require.NoError(t, err)
	require.Equal(t, 4500, out.TotalSteps)
	require.InDelta(t, 180.0, out.BurnedCalories, 1e-9)
	require.Nil(t, out.LastWeight)
}

func TestActivitySummaryWeekWindow(t *testing.T) {
	src := &fakeMeasurementSource{measurements: []models.Measurement{
		measurementAt(1, daysAgo(0), 1000, nil),
		measurementAt(1, daysAgo(5), 3000, nil), // outside day, inside week
		measurementAt(1, daysAgo(10), 9000, nil),
	}}
	svc := NewActivityService(src)

	day, err := svc.Summary(context.Background(), 1, PeriodDay)
	require.NoError(t, err)
	require.Equal(t, 1000, day.TotalSteps)

	week, err := svc.Summary(context.Background(), 1, PeriodWeek)
	require.NoError(t, err)
	require.Equal(t, 4000, week.TotalSteps)
}

func TestActivitySummaryLastWeightFromMostRecent(t *testing.T) {
	src := &fakeMeasurementSource{measurements: []models.Measurement{
		measurementAt(1, daysAgo(3), 0, floatPtr(82.5)),
		measurementAt(1, daysAgo(1), 0, floatPtr(81.0)),
		measurementAt(1, daysAgo(0), 0, nil), // newest has no weight
	}}
	svc := NewActivityService(src)

	out, err := svc.Summary(context.Background(), 1, PeriodWeek)
	require.NoError(t, err)
	require.NotNil(t, out.LastWeight)
	require.InDelta(t, 81.0, *out.LastWeight, 1e-9)
}

func TestActivitySummaryNilStepsCountAsZero(t *testing.T) {
	src := &fakeMeasurementSource{measurements: []models.Measurement{
		{UserID: 1, Timestamp: daysAgo(0), Pulse: intPtr(65)},
		measurementAt(1, daysAgo(0).Add(time.Hour), 500, nil),
	}}
	svc := NewActivityService(src)

	out, err := svc.Summary(context.Background(), 1, PeriodDay)
	require.NoError(t, err)
	require.Equal(t, 500, out.TotalSteps)
	require.InDelta(t, 20.0, out.BurnedCalories, 1e-9)
}

func TestActivitySummaryEmpty(t *testing.T) {
	svc := NewActivityService(&fakeMeasurementSource{})

	out, err := svc.Summary(context.Background(), 1, PeriodDay)
	require.NoError(t, err)
	require.Zero(t, out.TotalSteps)
	require.Zero(t, out.BurnedCalories)
	require.Nil(t, out.LastWeight)
}
