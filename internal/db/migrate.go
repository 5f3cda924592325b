package db

import (
	"fmt" // Error wrapping

	"fitness_tracker/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(database *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err := database.AutoMigrate(
		&domain.User{},
		&domain.Goal{},
		&domain.Exercise{},
		&domain.Workout{},
		&domain.ExerciseLog{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
