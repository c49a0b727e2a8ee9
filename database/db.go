package database

import (
	"fmt"
	"os"

	"travelplans/logger"
	log_model "travelplans/models/log"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitAuditDB connects the optional request-audit sink. Entity data never
// lives here; the store keeps it in memory. When DB_HOST is unset the sink
// is disabled and (nil, nil) is returned.
func InitAuditDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		logger.Info("DB_HOST not set, request audit logging disabled")
		return nil, nil
	}

	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the audit database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the audit database")

	if err := db.AutoMigrate(&log_model.Log{}); err != nil {
		return nil, fmt.Errorf("failed to migrate %T: %w", &log_model.Log{}, err)
	}

	if err := createIndexes(db); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All audit indexes created successfully")

	return db, nil
}

// createIndexes creates additional indexes for better query performance.
func createIndexes(db *gorm.DB) error {
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_logs_method ON logs(method)").Error; err != nil {
		return fmt.Errorf("failed to create log method index: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)").Error; err != nil {
		return fmt.Errorf("failed to create log status_code index: %w", err)
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}
	return nil
}
