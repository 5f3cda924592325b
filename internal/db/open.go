package db

import (
	"fmt"  // Error wrapping
	"time" // Slow query threshold

	"github.com/glebarez/sqlite" // Pure Go SQLite driver for GORM
	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/driver/postgres"    // PostgreSQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the database using the given driver name and DSN
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true, // Map driver errors to gorm.ErrDuplicatedKey and friends
		Logger: gormlogger.New(
			logrus.StandardLogger(), // GORM logs go through logrus
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	return database, nil
}

// OpenSQLite opens a SQLite database file with foreign keys enforced
func OpenSQLite(path string) (*gorm.DB, error) {
	return Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
}

// Close releases the underlying connection pool
func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
