package services

import (
	"context"
	"errors"
	"strings"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"
	"github.com/alinaharnat/healthy-eating-tracking-system/repository"

	"gorm.io/gorm"
)

var ErrProductExists = errors.New("product already exists")

type ProductService struct {
	products *repository.ProductRepository
}

func NewProductService(products *repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

type ProductInput struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories" binding:"required"`
	Proteins float64 `json:"proteins"`
	Fats     float64 `json:"fats"`
	Carbs    float64 `json:"carbs"`
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	normalized := normalizeName(in.Name)

	if _, err := s.products.GetByNormalizedName(ctx, normalized); err == nil {
		return nil, ErrProductExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	product := &models.Product{
		Name:           strings.TrimSpace(in.Name),
		NormalizedName: normalized,
		Calories:       in.Calories,
		Proteins:       in.Proteins,
		Fats:           in.Fats,
		Carbs:          in.Carbs,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, in ProductInput) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(in.Name)
	product.NormalizedName = normalizeName(in.Name)
	product.Calories = in.Calories
	product.Proteins = in.Proteins
	product.Fats = in.Fats
	product.Carbs = in.Carbs

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	rows, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *ProductService) Search(ctx context.Context, query string) ([]models.Product, error) {
	return s.products.Search(ctx, query, 50)
}
