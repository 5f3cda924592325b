package store

import (
	"fmt" // Error wrapping

	"fitness_tracker/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// GoalPatch holds the goal fields a PATCH may change
type GoalPatch struct {
	Name *string `json:"name"`
}

func (p GoalPatch) updates() map[string]any {
	updates := map[string]any{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	return updates
}

func preloadGoal(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("exercises.id") })
}

// ListGoals returns every goal with its exercises
func (s *Store) ListGoals() ([]domain.Goal, error) {
	goals := make([]domain.Goal, 0)
	if err := preloadGoal(s.db).Order("id").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

// CreateGoal persists goal
func (s *Store) CreateGoal(goal *domain.Goal) error {
	if err := s.db.Create(goal).Error; err != nil {
		return translate(err, "goal")
	}
	return translate(preloadGoal(s.db).First(goal, goal.ID).Error, "goal")
}

// UpdateGoal applies patch to the goal with id
func (s *Store) UpdateGoal(id uint, patch GoalPatch) (domain.Goal, error) {
	var goal domain.Goal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := updateByID[domain.Goal](tx, id, patch.updates(), "goal"); err != nil {
			return err
		}
		return translate(preloadGoal(tx).First(&goal, id).Error, "goal")
	})
	return goal, err
}

// DeleteGoal removes the goal, its user links, its exercises and their logs
func (s *Store) DeleteGoal(id uint) (Removed, error) {
	var removed Removed
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := exists[domain.Goal](tx, id, "goal"); err != nil {
			return err
		}
		var err error
		removed, err = deleteGoalTree(tx, id)
		return err
	})
	return removed, err
}
