package services

import (
	"context"
	"testing"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"
	"github.com/alinaharnat/healthy-eating-tracking-system/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Meal{},
		&models.MealProduct{},
		&models.Measurement{},
		&models.Recommendation{},
	))
	return db
}

func newTestAdminService(t *testing.T) (*AdminService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	svc := NewAdminService(db, repository.NewUserRepository(db), repository.NewMeasurementRepository(db))
	return svc, db
}

func seedUserWithMeal(t *testing.T, db *gorm.DB) (*models.User, *models.Product) {
	t.Helper()
	user := &models.User{
		Name:         "Olena",
		Email:        "olena@example.com",
		PasswordHash: "x",
		Role:         models.RoleClient,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)

	product := &models.Product{
		Name:           "Oatmeal",
		NormalizedName: "oatmeal",
		Calories:       380,
	}
	require.NoError(t, db.Create(product).Error)

	meal := &models.Meal{
		UserID: user.ID,
		Date:   daysAgo(0),
		Type:   models.MealBreakfast,
		Products: []models.MealProduct{
			{ProductID: product.ID, WeightGrams: 100},
		},
	}
	require.NoError(t, db.Create(meal).Error)
	return user, product
}

func TestImportRestoresOwnExport(t *testing.T) {
	svc, db := newTestAdminService(t)
	user, _ := seedUserWithMeal(t, db)
	require.NoError(t, db.Create(&models.Measurement{
		UserID:    user.ID,
		Timestamp: daysAgo(0),
		Steps:     intPtr(4000),
	}).Error)

	ctx := context.Background()
	snap, err := svc.Export(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Users, 1)
	require.Len(t, snap.Meals, 1)

	// restoring a snapshot into the database it came from must succeed;
	// the wiped rows' keys are reused by the snapshot rows
	require.NoError(t, svc.Import(ctx, snap))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	require.Equal(t, "olena@example.com", users[0].Email)

	// importing twice proves the wipe removes rows for good
	require.NoError(t, svc.Import(ctx, snap))

	var mealCount, entryCount int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&mealCount).Error)
	require.NoError(t, db.Model(&models.MealProduct{}).Count(&entryCount).Error)
	require.EqualValues(t, 1, mealCount)
	require.EqualValues(t, 1, entryCount)
}

func TestStatisticsSkipDeletedProducts(t *testing.T) {
	svc, db := newTestAdminService(t)
	user, kept := seedUserWithMeal(t, db)

	doomed := &models.Product{
		Name:           "Candy",
		NormalizedName: "candy",
		Calories:       500,
	}
	require.NoError(t, db.Create(doomed).Error)
	require.NoError(t, db.Create(&models.Meal{
		UserID: user.ID,
		Date:   daysAgo(1),
		Type:   models.MealSnack,
		Products: []models.MealProduct{
			{ProductID: doomed.ID, WeightGrams: 100},
		},
	}).Error)
	require.NoError(t, db.Delete(doomed).Error) // soft delete

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.UsersCount)

	// the deleted product neither holds a top-10 slot nor skews the average
	require.Len(t, stats.MostUsedProducts, 1)
	require.Equal(t, kept.ID, stats.MostUsedProducts[0].Product.ID)
	require.InDelta(t, 380.0, stats.AverageCalories, 1e-9)
}

func TestFullActivityIncludesMeasurements(t *testing.T) {
	svc, db := newTestAdminService(t)
	user, _ := seedUserWithMeal(t, db)
	require.NoError(t, db.Create(&models.Measurement{
		UserID:    user.ID,
		Timestamp: daysAgo(0),
		Steps:     intPtr(2500),
	}).Error)

	out, err := svc.FullActivity(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, out.User.Email)
	require.Len(t, out.Meals, 1)
	require.Len(t, out.Measurements, 1)
	require.Equal(t, 2500, out.Measurements[0].StepCount())
}
