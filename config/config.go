package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Pushkal2407/nutri-llama/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LoadEnv reads .env into the process environment. Missing file is fine in
// deployed environments where variables come from the platform.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetEnv returns the named variable or a fallback.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ConnectDB opens the Postgres connection and migrates the schema.
func ConnectDB() (*gorm.DB, error) {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			GetEnv("DB_PORT", "5432"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Meal{},
	); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}
	return db, nil
}
