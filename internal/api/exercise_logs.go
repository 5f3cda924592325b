package api

import (
	"net/http" // HTTP status codes

	"fitness_tracker/internal/domain" // Importing domain models
	"fitness_tracker/internal/store"  // Persistence handle

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateExerciseLogRequest is the body of POST /exercise_logs
type CreateExerciseLogRequest struct {
	Sets       *int     `json:"sets" binding:"required"`        // Number of sets
	Reps       *int     `json:"reps" binding:"required"`        // Reps per set
	Weight     *float64 `json:"weight"`                         // Defaults to 0
	WorkoutID  *uint    `json:"workout_id" binding:"required"`  // Owning workout
	ExerciseID *uint    `json:"exercise_id" binding:"required"` // Performed exercise
}

// ListExerciseLogsHandler returns all exercise logs
func ListExerciseLogsHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		logs, err := s.ListExerciseLogs()
		if err != nil {
			respondError(c, err, "fetch exercise logs")
			return
		}
		c.JSON(http.StatusOK, logs)
	}
}

// CreateExerciseLogHandler records an exercise performed within a workout
func CreateExerciseLogHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateExerciseLogRequest
		if err := bindCreate(c, &req); err != nil {
			respondError(c, err, "create exercise log")
			return
		}
		log := domain.ExerciseLog{
			Sets:       *req.Sets,
			Reps:       *req.Reps,
			WorkoutID:  *req.WorkoutID,
			ExerciseID: *req.ExerciseID,
		}
		if req.Weight != nil {
			log.Weight = *req.Weight
		}
		if err := s.CreateExerciseLog(&log); err != nil {
			respondError(c, err, "create exercise log")
			return
		}
		c.JSON(http.StatusCreated, log)
	}
}

// UpdateExerciseLogHandler changes an exercise log's fields
func UpdateExerciseLogHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "exercise log")
		if err != nil {
			respondError(c, err, "update exercise log")
			return
		}
		var patch store.ExerciseLogPatch
		if err := bindPatch(c, &patch); err != nil {
			respondError(c, err, "update exercise log")
			return
		}
		log, err := s.UpdateExerciseLog(id, patch)
		if err != nil {
			respondError(c, err, "update exercise log")
			return
		}
		c.JSON(http.StatusOK, log)
	}
}

// DeleteExerciseLogHandler deletes an exercise log
func DeleteExerciseLogHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "exercise log")
		if err != nil {
			respondError(c, err, "delete exercise log")
			return
		}
		removed, err := s.DeleteExerciseLog(id)
		if err != nil {
			respondError(c, err, "delete exercise log")
			return
		}
		respondDeleted(c, "Exercise log deleted", id, removed)
	}
}
