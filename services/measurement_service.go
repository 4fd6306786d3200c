package services

import (
	"context"
	"errors"
	"time"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"
	"github.com/alinaharnat/healthy-eating-tracking-system/repository"
)

var ErrMeasurementNotFound = errors.New("measurement not found")

type MeasurementService struct {
	measurements *repository.MeasurementRepository
}

func NewMeasurementService(measurements *repository.MeasurementRepository) *MeasurementService {
	return &MeasurementService{measurements: measurements}
}

type MeasurementInput struct {
	Pulse  *int     `json:"pulse" binding:"required"`
	Steps  *int     `json:"steps" binding:"required"`
	Weight *float64 `json:"weight"`
}

// Ingest stores one IoT sample for the user, stamped now unless the
// device supplied its own timestamp.
func (s *MeasurementService) Ingest(ctx context.Context, userID uint, at *time.Time, in MeasurementInput) (*models.Measurement, error) {
	ts := time.Now().UTC()
	if at != nil {
		ts = at.UTC()
	}

	m := &models.Measurement{
		UserID:    userID,
		Timestamp: ts,
		Pulse:     in.Pulse,
		Steps:     in.Steps,
		Weight:    in.Weight,
	}
	if err := s.measurements.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MeasurementService) Latest(ctx context.Context, userID uint) ([]models.Measurement, error) {
	return s.measurements.Latest(ctx, userID, 10)
}

func (s *MeasurementService) Delete(ctx context.Context, userID, id uint) error {
	rows, err := s.measurements.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMeasurementNotFound
	}
	return nil
}
