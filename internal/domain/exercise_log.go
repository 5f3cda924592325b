package domain

// ExerciseLog Model, one performed exercise within a workout
type ExerciseLog struct {
	ID         uint    `gorm:"primaryKey" json:"id"`              // Primary key
	Sets       int     `gorm:"not null" json:"sets"`              // Number of sets
	Reps       int     `gorm:"not null" json:"reps"`              // Reps per set
	Weight     float64 `gorm:"default:0" json:"weight"`           // Weight used, 0 if absent
	WorkoutID  uint    `gorm:"not null;index" json:"workout_id"`  // Foreign key to Workout
	ExerciseID uint    `gorm:"not null;index" json:"exercise_id"` // Foreign key to Exercise
}
