package api

import (
	"net/http" // HTTP status codes

	"fitness_tracker/internal/domain" // Importing domain models
	"fitness_tracker/internal/store"  // Persistence handle

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateWorkoutRequest is the body of POST /workouts
type CreateWorkoutRequest struct {
	Title  string `json:"title" binding:"required"`   // Session title
	Date   string `json:"date" binding:"required"`    // Free-form date
	Notes  string `json:"notes"`                      // Optional notes
	UserID *uint  `json:"user_id" binding:"required"` // Owning user
}

// ListWorkoutsHandler returns all workouts with their exercise logs
func ListWorkoutsHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		workouts, err := s.ListWorkouts()
		if err != nil {
			respondError(c, err, "fetch workouts")
			return
		}
		c.JSON(http.StatusOK, workouts)
	}
}

// CreateWorkoutHandler creates a workout for a user
func CreateWorkoutHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateWorkoutRequest
		if err := bindCreate(c, &req); err != nil {
			respondError(c, err, "create workout")
			return
		}
		workout := domain.Workout{Title: req.Title, Date: req.Date, Notes: req.Notes, UserID: *req.UserID}
		if err := s.CreateWorkout(&workout); err != nil {
			respondError(c, err, "create workout")
			return
		}
		c.JSON(http.StatusCreated, workout)
	}
}

// UpdateWorkoutHandler changes a workout's fields
func UpdateWorkoutHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "workout")
		if err != nil {
			respondError(c, err, "update workout")
			return
		}
		var patch store.WorkoutPatch
		if err := bindPatch(c, &patch); err != nil {
			respondError(c, err, "update workout")
			return
		}
		workout, err := s.UpdateWorkout(id, patch)
		if err != nil {
			respondError(c, err, "update workout")
			return
		}
		c.JSON(http.StatusOK, workout)
	}
}

// DeleteWorkoutHandler deletes a workout and its logs
func DeleteWorkoutHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "workout")
		if err != nil {
			respondError(c, err, "delete workout")
			return
		}
		removed, err := s.DeleteWorkout(id)
		if err != nil {
			respondError(c, err, "delete workout")
			return
		}
		respondDeleted(c, "Workout deleted", id, removed)
	}
}
