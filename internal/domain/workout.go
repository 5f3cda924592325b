package domain

// Workout Model
type Workout struct {
	ID     uint          `gorm:"primaryKey" json:"id"`                                           // Primary key
	Title  string        `gorm:"size:100;not null" json:"title"`                                 // Session title
	Date   string        `gorm:"size:50;not null" json:"date"`                                   // Free-form date
	Notes  string        `gorm:"type:text" json:"notes"`                                         // Optional notes
	UserID uint          `gorm:"not null;index" json:"user_id"`                                  // Foreign key to User
	Logs   []ExerciseLog `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"exercises"` // Owned exercise logs
}
