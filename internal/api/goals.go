package api

import (
	"net/http" // HTTP status codes

	"fitness_tracker/internal/domain" // Importing domain models
	"fitness_tracker/internal/store"  // Persistence handle

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateGoalRequest is the body of POST /goals
type CreateGoalRequest struct {
	Name string `json:"name" binding:"required"` // Goal name must be provided
}

// ListGoalsHandler returns all goals with their exercises
func ListGoalsHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		goals, err := s.ListGoals()
		if err != nil {
			respondError(c, err, "fetch goals")
			return
		}
		c.JSON(http.StatusOK, goals)
	}
}

// CreateGoalHandler creates a goal
func CreateGoalHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGoalRequest
		if err := bindCreate(c, &req); err != nil {
			respondError(c, err, "create goal")
			return
		}
		goal := domain.Goal{Name: req.Name}
		if err := s.CreateGoal(&goal); err != nil {
			respondError(c, err, "create goal")
			return
		}
		c.JSON(http.StatusCreated, goal)
	}
}

// UpdateGoalHandler renames a goal
func UpdateGoalHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "goal")
		if err != nil {
			respondError(c, err, "update goal")
			return
		}
		var patch store.GoalPatch
		if err := bindPatch(c, &patch); err != nil {
			respondError(c, err, "update goal")
			return
		}
		goal, err := s.UpdateGoal(id, patch)
		if err != nil {
			respondError(c, err, "update goal")
			return
		}
		c.JSON(http.StatusOK, goal)
	}
}

// DeleteGoalHandler deletes a goal and its exercises
func DeleteGoalHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "goal")
		if err != nil {
			respondError(c, err, "delete goal")
			return
		}
		removed, err := s.DeleteGoal(id)
		if err != nil {
			respondError(c, err, "delete goal")
			return
		}
		respondDeleted(c, "Goal deleted", id, removed)
	}
}
