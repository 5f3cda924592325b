package store

import (
	"fmt" // Error wrapping

	"fitness_tracker/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// ExercisePatch holds the exercise fields a PATCH may change
type ExercisePatch struct {
	ExerciseName *string `json:"exercise_name"`
	GoalID       *uint   `json:"goal_id"`
}

func (p ExercisePatch) updates() map[string]any {
	updates := map[string]any{}
	if p.ExerciseName != nil {
		updates["exercise_name"] = *p.ExerciseName
	}
	if p.GoalID != nil {
		updates["goal_id"] = *p.GoalID
	}
	return updates
}

// ListExercises returns every exercise in insertion order
func (s *Store) ListExercises() ([]domain.Exercise, error) {
	exercises := make([]domain.Exercise, 0)
	if err := s.db.Order("id").Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// CreateExercise persists exercise
func (s *Store) CreateExercise(exercise *domain.Exercise) error {
	return translate(s.db.Create(exercise).Error, "exercise")
}

// UpdateExercise applies patch to the exercise with id
func (s *Store) UpdateExercise(id uint, patch ExercisePatch) (domain.Exercise, error) {
	var exercise domain.Exercise
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := updateByID[domain.Exercise](tx, id, patch.updates(), "exercise"); err != nil {
			return err
		}
		return translate(tx.First(&exercise, id).Error, "exercise")
	})
	return exercise, err
}

// DeleteExercise removes the exercise and the logs that reference it
func (s *Store) DeleteExercise(id uint) (Removed, error) {
	var removed Removed
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := exists[domain.Exercise](tx, id, "exercise"); err != nil {
			return err
		}
		var err error
		removed, err = deleteExerciseTree(tx, id)
		return err
	})
	return removed, err
}
