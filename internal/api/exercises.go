package api

import (
	"net/http" // HTTP status codes

	"fitness_tracker/internal/domain" // Importing domain models
	"fitness_tracker/internal/store"  // Persistence handle

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateExerciseRequest is the body of POST /exercises
type CreateExerciseRequest struct {
	ExerciseName string `json:"exercise_name" binding:"required"` // Movement name
	GoalID       *uint  `json:"goal_id" binding:"required"`       // Owning goal
}

// ListExercisesHandler returns all exercises
func ListExercisesHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		exercises, err := s.ListExercises()
		if err != nil {
			respondError(c, err, "fetch exercises")
			return
		}
		c.JSON(http.StatusOK, exercises)
	}
}

// CreateExerciseHandler creates an exercise under a goal
func CreateExerciseHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateExerciseRequest
		if err := bindCreate(c, &req); err != nil {
			respondError(c, err, "create exercise")
			return
		}
		exercise := domain.Exercise{ExerciseName: req.ExerciseName, GoalID: req.GoalID}
		if err := s.CreateExercise(&exercise); err != nil {
			respondError(c, err, "create exercise")
			return
		}
		c.JSON(http.StatusCreated, exercise)
	}
}

// UpdateExerciseHandler changes an exercise's name or goal
func UpdateExerciseHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "exercise")
		if err != nil {
			respondError(c, err, "update exercise")
			return
		}
		var patch store.ExercisePatch
		if err := bindPatch(c, &patch); err != nil {
			respondError(c, err, "update exercise")
			return
		}
		exercise, err := s.UpdateExercise(id, patch)
		if err != nil {
			respondError(c, err, "update exercise")
			return
		}
		c.JSON(http.StatusOK, exercise)
	}
}

// DeleteExerciseHandler deletes an exercise and the logs that reference it
func DeleteExerciseHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "exercise")
		if err != nil {
			respondError(c, err, "delete exercise")
			return
		}
		removed, err := s.DeleteExercise(id)
		if err != nil {
			respondError(c, err, "delete exercise")
			return
		}
		respondDeleted(c, "Exercise deleted", id, removed)
	}
}
