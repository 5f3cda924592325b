package domain

// UserGoalsTable is the association table between users and goals
const UserGoalsTable = "user_goals"

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                                           // Primary key
	Name         string    `gorm:"size:50;not null" json:"name"`                                   // Display name
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`                     // Unique email
	PasswordHash string    `gorm:"size:128" json:"-"`                                              // Bcrypt hash, never serialized
	Workouts     []Workout `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"workouts"`  // Owned workouts
	Goals        []Goal    `gorm:"many2many:user_goals;constraint:OnDelete:CASCADE;" json:"goals"` // Shared goals
}
