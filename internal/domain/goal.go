package domain

// Goal Model
type Goal struct {
	ID        uint       `gorm:"primaryKey" json:"id"`                                           // Primary key
	Name      string     `gorm:"size:50;not null" json:"name"`                                   // e.g. lose_weight
	Exercises []Exercise `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"exercises"` // Owned exercises
}

// DefaultGoals are the goals offered by the frontend dropdown
var DefaultGoals = []string{
	"lose_weight",
	"gain_muscle",
	"add_weight",
	"stay_fit",
	"grow_glutes",
}
