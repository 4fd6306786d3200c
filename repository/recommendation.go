package repository

import (
	"context"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{DB: db}
}

func (r *RecommendationRepository) Create(ctx context.Context, rec *models.Recommendation) error {
	return r.DB.WithContext(ctx).Create(rec).Error
}

func (r *RecommendationRepository) ListByUser(ctx context.Context, userID uint) ([]models.Recommendation, error) {
	var out []models.Recommendation
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *RecommendationRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&models.Recommendation{}, id)
	return res.RowsAffected, res.Error
}
