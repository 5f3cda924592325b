package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"fitness_tracker/internal/apperr"     // Application error kinds
	"fitness_tracker/internal/domain"     // Importing domain models
	"fitness_tracker/internal/middleware" // Context keys
	"fitness_tracker/internal/store"      // Persistence handle
	"fitness_tracker/internal/utils"      // Password hashing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`     // Name must be provided
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
	Goal     string `json:"goal"`                        // Optional goal name to link
	GoalID   *uint  `json:"goal_id"`                     // Optional goal id to link
}

// ListUsersHandler returns all users with their goals and workouts
func ListUsersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := s.ListUsers()
		if err != nil {
			respondError(c, err, "fetch users")
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// CreateUserHandler creates a user, linking the named goal when it exists
func CreateUserHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := bindCreate(c, &req); err != nil {
			respondError(c, err, "create user")
			return
		}
		user, err := newUser(req.Name, req.Email, req.Password)
		if err != nil {
			respondError(c, err, "hash password")
			return
		}
		if err := s.CreateUser(&user, store.GoalRef{Name: req.Goal, ID: req.GoalID}); err != nil {
			respondError(c, err, "create user")
			return
		}
		logUserCreated(user)
		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
	}
}

// UpdateUserHandler changes a user's name or email
func UpdateUserHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "user")
		if err != nil {
			respondError(c, err, "update user")
			return
		}
		var patch store.UserPatch
		if err := bindPatch(c, &patch); err != nil {
			respondError(c, err, "update user")
			return
		}
		user, err := s.UpdateUser(id, patch)
		if err != nil {
			respondError(c, err, "update user")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DeleteUserHandler deletes a user together with its workouts and their logs
func DeleteUserHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "user")
		if err != nil {
			respondError(c, err, "delete user")
			return
		}
		removed, err := s.DeleteUser(id)
		if err != nil {
			respondError(c, err, "delete user")
			return
		}
		respondDeleted(c, "User deleted", id, removed)
	}
}

// CurrentUserHandler returns the authenticated user
func CurrentUserHandler(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(domain.User) // Loaded by CurrentUserMiddleware
	c.JSON(http.StatusOK, user)
}

// newUser builds a user with a hashed password
func newUser(name, email, password string) (domain.User, error) {
	hash, err := utils.HashPassword(password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return domain.User{}, apperr.Validation("password is too long")
	}
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{Name: name, Email: email, PasswordHash: hash}, nil
}

func logUserCreated(user domain.User) {
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,         // User ID
		"goals":   len(user.Goals), // Linked goals
	}).Info("User created")
}

// respondDeleted logs the cascade and answers 204; the confirmation message
// goes to the log because a 204 response carries no body
func respondDeleted(c *gin.Context, message string, id uint, removed store.Removed) {
	fields := logrus.Fields{"id": id}
	for table, n := range removed {
		fields[table] = n // Rows removed per table
	}
	logrus.WithFields(fields).Info(message)
	c.Status(http.StatusNoContent)
}
