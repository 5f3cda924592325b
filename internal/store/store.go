// Package store is the persistence handle shared by every handler. Each
// exported method runs as a single transaction.
package store

import (
	"errors" // Error inspection

	"fitness_tracker/internal/apperr" // Application error kinds

	"gorm.io/gorm" // GORM ORM library
)

// Store wraps the process-wide connection pool
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by db
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// translate maps storage errors onto application error kinds
func translate(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(entity + " not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict(entity + " already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.Validation("referenced record does not exist")
	default:
		return err
	}
}

// updateByID loads the record, applies the column updates and reloads it.
// An empty update set leaves the record untouched.
func updateByID[T any](tx *gorm.DB, id uint, updates map[string]any, entity string) error {
	var record T
	if err := tx.First(&record, id).Error; err != nil {
		return translate(err, entity)
	}
	if len(updates) == 0 {
		return nil
	}
	if err := tx.Model(&record).Updates(updates).Error; err != nil {
		return translate(err, entity)
	}
	return nil
}

// exists returns NotFound unless a T with the id is stored
func exists[T any](tx *gorm.DB, id uint, entity string) error {
	var record T
	return translate(tx.Select("id").First(&record, id).Error, entity)
}
