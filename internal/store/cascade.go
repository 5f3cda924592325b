package store

import (
	"fmt" // Error wrapping

	"fitness_tracker/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Ownership graph:
//
//	User -> Workout -> ExerciseLog
//	Goal -> Exercise -> ExerciseLog
//
// user_goals rows go with either side. Children are removed before their
// parent so the routines work with or without ON DELETE CASCADE.

// Removed counts deleted rows per table
type Removed map[string]int64

func (r Removed) add(table string, tx *gorm.DB) error {
	if tx.Error != nil {
		return fmt.Errorf("delete from %s: %w", table, tx.Error)
	}
	r[table] += tx.RowsAffected
	return nil
}

func deleteUserTree(tx *gorm.DB, userID uint) (Removed, error) {
	removed := Removed{}
	workoutIDs := tx.Model(&domain.Workout{}).Select("id").Where("user_id = ?", userID)
	if err := removed.add("exercise_logs", tx.Where("workout_id IN (?)", workoutIDs).Delete(&domain.ExerciseLog{})); err != nil {
		return nil, err
	}
	if err := removed.add("workouts", tx.Where("user_id = ?", userID).Delete(&domain.Workout{})); err != nil {
		return nil, err
	}
	if err := removed.add(domain.UserGoalsTable, tx.Exec("DELETE FROM "+domain.UserGoalsTable+" WHERE user_id = ?", userID)); err != nil {
		return nil, err
	}
	if err := removed.add("users", tx.Delete(&domain.User{}, userID)); err != nil {
		return nil, err
	}
	return removed, nil
}

func deleteWorkoutTree(tx *gorm.DB, workoutID uint) (Removed, error) {
	removed := Removed{}
	if err := removed.add("exercise_logs", tx.Where("workout_id = ?", workoutID).Delete(&domain.ExerciseLog{})); err != nil {
		return nil, err
	}
	if err := removed.add("workouts", tx.Delete(&domain.Workout{}, workoutID)); err != nil {
		return nil, err
	}
	return removed, nil
}

func deleteGoalTree(tx *gorm.DB, goalID uint) (Removed, error) {
	removed := Removed{}
	exerciseIDs := tx.Model(&domain.Exercise{}).Select("id").Where("goal_id = ?", goalID)
	if err := removed.add("exercise_logs", tx.Where("exercise_id IN (?)", exerciseIDs).Delete(&domain.ExerciseLog{})); err != nil {
		return nil, err
	}
	if err := removed.add("exercises", tx.Where("goal_id = ?", goalID).Delete(&domain.Exercise{})); err != nil {
		return nil, err
	}
	if err := removed.add(domain.UserGoalsTable, tx.Exec("DELETE FROM "+domain.UserGoalsTable+" WHERE goal_id = ?", goalID)); err != nil {
		return nil, err
	}
	if err := removed.add("goals", tx.Delete(&domain.Goal{}, goalID)); err != nil {
		return nil, err
	}
	return removed, nil
}

func deleteExerciseTree(tx *gorm.DB, exerciseID uint) (Removed, error) {
	removed := Removed{}
	if err := removed.add("exercise_logs", tx.Where("exercise_id = ?", exerciseID).Delete(&domain.ExerciseLog{})); err != nil {
		return nil, err
	}
	if err := removed.add("exercises", tx.Delete(&domain.Exercise{}, exerciseID)); err != nil {
		return nil, err
	}
	return removed, nil
}
