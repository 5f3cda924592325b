package store

import (
	"fmt" // Error wrapping

	"fitness_tracker/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// ExerciseLogPatch holds the log fields a PATCH may change
type ExerciseLogPatch struct {
	Sets       *int     `json:"sets"`
	Reps       *int     `json:"reps"`
	Weight     *float64 `json:"weight"`
	WorkoutID  *uint    `json:"workout_id"`
	ExerciseID *uint    `json:"exercise_id"`
}

func (p ExerciseLogPatch) updates() map[string]any {
	updates := map[string]any{}
	if p.Sets != nil {
		updates["sets"] = *p.Sets
	}
	if p.Reps != nil {
		updates["reps"] = *p.Reps
	}
	if p.Weight != nil {
		updates["weight"] = *p.Weight
	}
	if p.WorkoutID != nil {
		updates["workout_id"] = *p.WorkoutID
	}
	if p.ExerciseID != nil {
		updates["exercise_id"] = *p.ExerciseID
	}
	return updates
}

// ListExerciseLogs returns every exercise log in insertion order
func (s *Store) ListExerciseLogs() ([]domain.ExerciseLog, error) {
	logs := make([]domain.ExerciseLog, 0)
	if err := s.db.Order("id").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list exercise logs: %w", err)
	}
	return logs, nil
}

// CreateExerciseLog persists log
func (s *Store) CreateExerciseLog(log *domain.ExerciseLog) error {
	return translate(s.db.Create(log).Error, "exercise log")
}

// UpdateExerciseLog applies patch to the log with id
func (s *Store) UpdateExerciseLog(id uint, patch ExerciseLogPatch) (domain.ExerciseLog, error) {
	var log domain.ExerciseLog
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := updateByID[domain.ExerciseLog](tx, id, patch.updates(), "exercise log"); err != nil {
			return err
		}
		return translate(tx.First(&log, id).Error, "exercise log")
	})
	return log, err
}

// DeleteExerciseLog removes the log with id
func (s *Store) DeleteExerciseLog(id uint) (Removed, error) {
	removed := Removed{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := exists[domain.ExerciseLog](tx, id, "exercise log"); err != nil {
			return err
		}
		return removed.add("exercise_logs", tx.Delete(&domain.ExerciseLog{}, id))
	})
	return removed, err
}
