package store

import (
	"fmt" // Error wrapping

	"fitness_tracker/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// WorkoutPatch holds the workout fields a PATCH may change
type WorkoutPatch struct {
	Title  *string `json:"title"`
	Date   *string `json:"date"`
	Notes  *string `json:"notes"`
	UserID *uint   `json:"user_id"`
}

func (p WorkoutPatch) updates() map[string]any {
	updates := map[string]any{}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Date != nil {
		updates["date"] = *p.Date
	}
	if p.Notes != nil {
		updates["notes"] = *p.Notes
	}
	if p.UserID != nil {
		updates["user_id"] = *p.UserID
	}
	return updates
}

func preloadWorkout(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Logs", func(db *gorm.DB) *gorm.DB { return db.Order("exercise_logs.id") })
}

// ListWorkouts returns every workout with its logs
func (s *Store) ListWorkouts() ([]domain.Workout, error) {
	workouts := make([]domain.Workout, 0)
	if err := preloadWorkout(s.db).Order("id").Find(&workouts).Error; err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

// CreateWorkout persists workout
func (s *Store) CreateWorkout(workout *domain.Workout) error {
	if err := s.db.Create(workout).Error; err != nil {
		return translate(err, "workout")
	}
	return translate(preloadWorkout(s.db).First(workout, workout.ID).Error, "workout")
}

// UpdateWorkout applies patch to the workout with id
func (s *Store) UpdateWorkout(id uint, patch WorkoutPatch) (domain.Workout, error) {
	var workout domain.Workout
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := updateByID[domain.Workout](tx, id, patch.updates(), "workout"); err != nil {
			return err
		}
		return translate(preloadWorkout(tx).First(&workout, id).Error, "workout")
	})
	return workout, err
}

// DeleteWorkout removes the workout and its logs
func (s *Store) DeleteWorkout(id uint) (Removed, error) {
	var removed Removed
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := exists[domain.Workout](tx, id, "workout"); err != nil {
			return err
		}
		var err error
		removed, err = deleteWorkoutTree(tx, id)
		return err
	})
	return removed, err
}
