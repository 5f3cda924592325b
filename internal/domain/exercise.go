package domain

// Exercise Model
type Exercise struct {
	ID           uint          `gorm:"primaryKey" json:"id"`                                   // Primary key
	ExerciseName string        `gorm:"size:50;not null" json:"exercise_name"`                  // Movement name
	GoalID       *uint         `json:"goal_id"`                                                // Foreign key to Goal, nullable
	Logs         []ExerciseLog `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Logs referencing this exercise
}
