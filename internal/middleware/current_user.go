package middleware

import (
	"net/http" // HTTP status codes

	"fitness_tracker/internal/apperr" // Application error kinds
	"fitness_tracker/internal/store"  // Persistence handle

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// CurrentUserMiddleware loads the authenticated user from the database on each request
func CurrentUserMiddleware(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID) // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			abort(c, apperr.Auth("Unauthorized"))
			return
		}
		user, err := s.GetUser(userID.(uint)) // Fetch user from database
		if err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				// The token outlived its user
				abort(c, err)
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to load current user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}
		c.Set(ContextUser, user) // Store the user for the handler
		c.Next()
	}
}
