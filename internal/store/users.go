package store

import (
	"errors" // Error inspection
	"fmt"    // Error wrapping

	"fitness_tracker/internal/apperr" // Application error kinds
	"fitness_tracker/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// GoalRef optionally names a goal to link to a new user, by name or by id
type GoalRef struct {
	Name string
	ID   *uint
}

// UserPatch holds the user fields a PATCH may change
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (p UserPatch) updates() map[string]any {
	updates := map[string]any{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	return updates
}

func preloadUser(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Goals", func(db *gorm.DB) *gorm.DB { return db.Order("goals.id") }).
		Preload("Goals.Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("exercises.id") }).
		Preload("Workouts", func(db *gorm.DB) *gorm.DB { return db.Order("workouts.id") }).
		Preload("Workouts.Logs", func(db *gorm.DB) *gorm.DB { return db.Order("exercise_logs.id") })
}

// ListUsers returns every user in insertion order
func (s *Store) ListUsers() ([]domain.User, error) {
	users := make([]domain.User, 0)
	if err := preloadUser(s.db).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser loads a user with its goals and workouts
func (s *Store) GetUser(id uint) (domain.User, error) {
	var user domain.User
	if err := preloadUser(s.db).First(&user, id).Error; err != nil {
		return domain.User{}, translate(err, "user")
	}
	return user, nil
}

// FindUserByEmail loads the user registered with email
func (s *Store) FindUserByEmail(email string) (domain.User, error) {
	var user domain.User
	if err := preloadUser(s.db).Where("email = ?", email).First(&user).Error; err != nil {
		return domain.User{}, translate(err, "user")
	}
	return user, nil
}

// CreateUser persists user, linking it to the referenced goal when one
// matches. A reference that matches nothing is ignored.
func (s *Store) CreateUser(user *domain.User, ref GoalRef) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureEmailFree(tx, user.Email, 0); err != nil {
			return err
		}
		goal, err := lookupGoal(tx, ref)
		if err != nil {
			return err
		}
		if goal != nil {
			user.Goals = append(user.Goals, *goal)
		}
		if err := tx.Create(user).Error; err != nil {
			return translate(err, "user")
		}
		return translate(preloadUser(tx).First(user, user.ID).Error, "user")
	})
}

// UpdateUser applies patch to the user with id
func (s *Store) UpdateUser(id uint, patch UserPatch) (domain.User, error) {
	var user domain.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := exists[domain.User](tx, id, "user"); err != nil {
			return err // Unknown id wins over a taken email
		}
		if patch.Email != nil {
			if err := ensureEmailFree(tx, *patch.Email, id); err != nil {
				return err
			}
		}
		if err := updateByID[domain.User](tx, id, patch.updates(), "user"); err != nil {
			return err
		}
		return translate(preloadUser(tx).First(&user, id).Error, "user")
	})
	return user, err
}

// DeleteUser removes the user, its goal links, workouts and their logs
func (s *Store) DeleteUser(id uint) (Removed, error) {
	var removed Removed
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := exists[domain.User](tx, id, "user"); err != nil {
			return err
		}
		var err error
		removed, err = deleteUserTree(tx, id)
		return err
	})
	return removed, err
}

// ensureEmailFree fails with a ConflictError when another user owns email
func ensureEmailFree(tx *gorm.DB, email string, exceptID uint) error {
	var count int64
	query := tx.Model(&domain.User{}).Where("email = ?", email)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return apperr.Conflict("email already registered")
	}
	return nil
}

func lookupGoal(tx *gorm.DB, ref GoalRef) (*domain.Goal, error) {
	var goal domain.Goal
	var err error
	switch {
	case ref.ID != nil:
		err = tx.First(&goal, *ref.ID).Error
	case ref.Name != "":
		err = tx.Where("name = ?", ref.Name).Order("id").First(&goal).Error
	default:
		return nil, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup goal: %w", err)
	}
	return &goal, nil
}
