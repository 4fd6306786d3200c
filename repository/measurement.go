package repository

import (
	"context"
	"time"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"

	"gorm.io/gorm"
)

type MeasurementRepository struct {
	DB *gorm.DB
}

func NewMeasurementRepository(db *gorm.DB) *MeasurementRepository {
	return &MeasurementRepository{DB: db}
}

func (r *MeasurementRepository) Create(ctx context.Context, m *models.Measurement) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *MeasurementRepository) MeasurementsInRange(ctx context.Context, userID uint, from, to time.Time) ([]models.Measurement, error) {
	var out []models.Measurement
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, from, to).
		Order("timestamp ASC").
		Find(&out).Error
	return out, err
}

func (r *MeasurementRepository) Latest(ctx context.Context, userID uint, limit int) ([]models.Measurement, error) {
	var out []models.Measurement
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *MeasurementRepository) Delete(ctx context.Context, userID, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Measurement{})
	return res.RowsAffected, res.Error
}

func (r *MeasurementRepository) ListByUser(ctx context.Context, userID uint) ([]models.Measurement, error) {
	var out []models.Measurement
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC").
		Find(&out).Error
	return out, err
}
