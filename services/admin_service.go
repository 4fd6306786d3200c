package services

import (
	"context"
	"errors"

	"github.com/alinaharnat/healthy-eating-tracking-system/logger"
	"github.com/alinaharnat/healthy-eating-tracking-system/models"
	"github.com/alinaharnat/healthy-eating-tracking-system/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrInvalidRole = errors.New("invalid role")

type AdminService struct {
	db           *gorm.DB
	users        *repository.UserRepository
	measurements *repository.MeasurementRepository
}

func NewAdminService(db *gorm.DB, users *repository.UserRepository, measurements *repository.MeasurementRepository) *AdminService {
	return &AdminService{db: db, users: users, measurements: measurements}
}

func (s *AdminService) ChangeRole(ctx context.Context, userID uint, role string) (*models.User, error) {
	switch role {
	case models.RoleClient, models.RoleDietitian, models.RoleAdmin:
	default:
		return nil, ErrInvalidRole
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.Role = role
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AdminService) SetActive(ctx context.Context, userID uint, active bool) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.IsActive = active
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, userID uint) error {
	rows, err := s.users.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UserActivity is the full data dump for one user.
type UserActivity struct {
	User         models.PublicUser    `json:"user"`
	Meals        []models.Meal        `json:"meals"`
	Measurements []models.Measurement `json:"measurements"`
}

func (s *AdminService) FullActivity(ctx context.Context, userID uint) (*UserActivity, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Preload("Products.Product").
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	measurements, err := s.measurements.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserActivity{
		User:         user.Public(),
		Meals:        meals,
		Measurements: measurements,
	}, nil
}

// ---------- System statistics ----------

type ProductUsage struct {
	Product models.Product `json:"product"`
	Usage   int64          `json:"usage"`
}

type SystemStatistics struct {
	UsersCount       int64            `json:"users_count"`
	RolesCount       map[string]int64 `json:"roles_count"`
	MostUsedProducts []ProductUsage   `json:"most_used_products"`
	AverageCalories  float64          `json:"average_calories"` // per logged meal entry
}

func (s *AdminService) Statistics(ctx context.Context) (*SystemStatistics, error) {
	out := &SystemStatistics{RolesCount: map[string]int64{}}

	if err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Count(&out.UsersCount).Error; err != nil {
		return nil, err
	}
	for _, role := range []string{models.RoleClient, models.RoleDietitian, models.RoleAdmin} {
		n, err := s.users.CountByRole(ctx, role)
		if err != nil {
			return nil, err
		}
		out.RolesCount[role] = n
	}

	// Top products by the number of meal entries referencing them.
	type usageRow struct {
		ProductID uint
		Usage     int64
	}
	var rows []usageRow
	if err := s.db.WithContext(ctx).
		Model(&models.MealProduct{}).
		Select("product_id, COUNT(*) AS usage").
		Joins("JOIN products ON products.id = meal_products.product_id AND products.deleted_at IS NULL").
		Group("product_id").
		Order("usage DESC").
		Limit(10).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		var product models.Product
		if err := s.db.WithContext(ctx).First(&product, row.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // entry references a deleted product
			}
			return nil, err
		}
		out.MostUsedProducts = append(out.MostUsedProducts, ProductUsage{Product: product, Usage: row.Usage})
	}

	// Average calories per logged entry, across all users.
	type calRow struct {
		Total float64
		Count int64
	}
	var cr calRow
	if err := s.db.WithContext(ctx).
		Model(&models.MealProduct{}).
		Select("COALESCE(SUM(products.calories * meal_products.weight_grams / 100.0), 0) AS total, COUNT(*) AS count").
		Joins("JOIN products ON products.id = meal_products.product_id AND products.deleted_at IS NULL").
		Scan(&cr).Error; err != nil {
		return nil, err
	}
	if cr.Count > 0 {
		out.AverageCalories = cr.Total / float64(cr.Count)
	}

	return out, nil
}

// ---------- Export / import ----------

// DatabaseSnapshot is a full JSON dump of the domain tables.
type DatabaseSnapshot struct {
	Users        []models.User        `json:"users"`
	Products     []models.Product     `json:"products"`
	Meals        []models.Meal        `json:"meals"`
	Measurements []models.Measurement `json:"measurements"`
}

func (s *AdminService) Export(ctx context.Context) (*DatabaseSnapshot, error) {
	var snap DatabaseSnapshot
	if err := s.db.WithContext(ctx).Find(&snap.Users).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Find(&snap.Products).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Preload("Products").Find(&snap.Meals).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Find(&snap.Measurements).Error; err != nil {
		return nil, err
	}
	return &snap, nil
}

// Import wipes the domain tables and reloads them from the snapshot.
func (s *AdminService) Import(ctx context.Context, snap *DatabaseSnapshot) error {
	logger.Warn("database import requested",
		zap.Int("users", len(snap.Users)),
		zap.Int("products", len(snap.Products)),
		zap.Int("meals", len(snap.Meals)),
		zap.Int("measurements", len(snap.Measurements)))
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&models.MealProduct{}, &models.Meal{}, &models.Measurement{},
			&models.Recommendation{}, &models.Product{}, &models.User{},
		} {
			// Unscoped: soft-deleted rows keep their keys and would
			// collide with the snapshot's rows on insert.
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error; err != nil {
				return err
			}
		}
		if len(snap.Users) > 0 {
			if err := tx.Create(&snap.Users).Error; err != nil {
				return err
			}
		}
		if len(snap.Products) > 0 {
			if err := tx.Create(&snap.Products).Error; err != nil {
				return err
			}
		}
		if len(snap.Meals) > 0 {
			if err := tx.Create(&snap.Meals).Error; err != nil {
				return err
			}
		}
		if len(snap.Measurements) > 0 {
			if err := tx.Create(&snap.Measurements).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
