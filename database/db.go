package database

import (
	"fmt"

	"movieflix/config"
	"movieflix/logger"
	logModel "movieflix/models/log"
	movieModel "movieflix/models/movie"
	otpModel "movieflix/models/otp"
	userModel "movieflix/models/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the Postgres connection, migrates the schema and creates
// the supporting indexes.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models, dependencies first.
func autoMigrate() error {
	// Stage 1: rows nothing references
	stage1Models := []interface{}{
		&userModel.User{},
		&movieModel.Movie{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: rows referencing stage 1
	stage2Models := []interface{}{
		&otpModel.ForgotPassword{},
		&logModel.Log{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)").Error; err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_movies_title ON movies(title)").Error; err != nil {
		return fmt.Errorf("failed to create movie title index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_movies_release_year ON movies(release_year)").Error; err != nil {
		return fmt.Errorf("failed to create movie release_year index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_forgot_passwords_user_otp ON forgot_passwords(user_id, otp)").Error; err != nil {
		return fmt.Errorf("failed to create forgot_passwords (user_id, otp) index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_forgot_passwords_expires_at ON forgot_passwords(expires_at)").Error; err != nil {
		return fmt.Errorf("failed to create forgot_passwords expires_at index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}
