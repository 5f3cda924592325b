package db

import (
	"errors" // Error inspection
	"fmt"    // Error wrapping

	"fitness_tracker/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// SeedGoals inserts each named goal unless one with that name already exists
func SeedGoals(database *gorm.DB, names []string) error {
	return database.Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			var existing domain.Goal
			err := tx.Where("name = ?", name).First(&existing).Error
			if err == nil {
				logrus.WithField("goal", name).Info("Goal already exists")
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("lookup goal %q: %w", name, err)
			}
			if err := tx.Create(&domain.Goal{Name: name}).Error; err != nil {
				return fmt.Errorf("create goal %q: %w", name, err)
			}
			logrus.WithField("goal", name).Info("Added goal")
		}
		return nil
	})
}
