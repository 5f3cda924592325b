package main

import (
	"flag" // Command line flags
	"fmt"  // Error wrapping

	"fitness_tracker/internal/config" // Custom import path (Config)
	"fitness_tracker/internal/db"     // Custom import path (Database)
	"fitness_tracker/internal/domain" // Custom import path (Domain)

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// Main entry point for migration
func main() {
	seed := flag.Bool("seed", false, "insert the predefined goals after migrating")
	flag.Parse()

	cfg := config.LoadConfig() // Load configuration

	database, err := db.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	err = run(database, *seed)
	if cerr := db.Close(database); cerr != nil {
		logrus.Errorf("failed to close DB: %v", cerr)
	}
	if err != nil {
		logrus.Fatalf("%v", err) // Log fatal error if migration or seeding fails
	}
}

// run migrates the schema and optionally seeds the default goals
func run(database *gorm.DB, seed bool) error {
	if err := db.Migrate(database); err != nil {
		return err
	}
	if !seed {
		return nil
	}
	if err := db.SeedGoals(database, domain.DefaultGoals); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	logrus.Info("Seeding complete")
	return nil
}
