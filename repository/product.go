package repository

import (
	"context"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) GetByNormalizedName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).
		Where("normalized_name = ?", name).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Save(product).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	return res.RowsAffected, res.Error
}

// Search matches product names case-insensitively by substring. An empty
// query lists the catalog up to the limit.
func (r *ProductRepository) Search(ctx context.Context, query string, limit int) ([]models.Product, error) {
	var products []models.Product
	q := r.DB.WithContext(ctx).Order("name ASC").Limit(limit)
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}
	err := q.Find(&products).Error
	return products, err
}
