package config

import (
	"fmt"
	"log"
	"os"

	"github.com/alinaharnat/healthy-eating-tracking-system/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB loads the environment, connects to PostgreSQL and migrates the
// schema. The returned handle is what the rest of the app wires with;
// the package-level DB is kept for convenience.
func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Meal{},
		&models.MealProduct{},
		&models.Measurement{},
		&models.Recommendation{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	DB = db
	return db
}
