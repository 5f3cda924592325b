package api

import (
	"net/http" // HTTP status codes
	"time"     // CORS max age

	"fitness_tracker/internal/middleware" // Custom package for middleware
	"fitness_tracker/internal/store"      // Persistence handle
	"fitness_tracker/internal/utils"      // Tokens and denylist

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
)

// Deps are the process-wide collaborators shared by every handler
type Deps struct {
	Store        *store.Store        // Persistence handle
	Tokens       *utils.TokenManager // Access token signing
	Denylist     utils.Denylist      // Revoked token ids
	SecretKey    string              // CSRF token key
	CookieSecure bool                // Secure flag on auth cookies
	CORSOrigins  []string            // Allowed browser origins
}

// NewRouter builds the gin engine with every route registered
func NewRouter(deps Deps) *gin.Engine {
	registerJSONFieldNames() // Report validation errors with JSON field names

	r := gin.New() // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestLogger())
	if len(deps.CORSOrigins) > 0 {
		// The frontend sends cookies, so credentials must be allowed
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.CSRFHeaderName},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	s := deps.Store
	requireAuth := middleware.JWTAuthMiddleware(deps.Tokens, deps.Denylist, deps.SecretKey)

	r.GET("/", IndexHandler) // Health endpoint

	// User routes
	users := r.Group("/users")
	users.GET("", ListUsersHandler(s))
	users.POST("", CreateUserHandler(s))
	users.PATCH("/:id", UpdateUserHandler(s))
	users.DELETE("/:id", DeleteUserHandler(s))
	users.GET("/me", requireAuth, middleware.CurrentUserMiddleware(s), CurrentUserHandler) // Identity-gated

	// Goal routes
	goals := r.Group("/goals")
	goals.GET("", ListGoalsHandler(s))
	goals.POST("", CreateGoalHandler(s))
	goals.PATCH("/:id", UpdateGoalHandler(s))
	goals.DELETE("/:id", DeleteGoalHandler(s))

	// Exercise routes
	exercises := r.Group("/exercises")
	exercises.GET("", ListExercisesHandler(s))
	exercises.POST("", CreateExerciseHandler(s))
	exercises.PATCH("/:id", UpdateExerciseHandler(s))
	exercises.DELETE("/:id", DeleteExerciseHandler(s))

	// Workout routes
	workouts := r.Group("/workouts")
	workouts.GET("", ListWorkoutsHandler(s))
	workouts.POST("", CreateWorkoutHandler(s))
	workouts.PATCH("/:id", UpdateWorkoutHandler(s))
	workouts.DELETE("/:id", DeleteWorkoutHandler(s))

	// Exercise log routes
	logs := r.Group("/exercise_logs")
	logs.GET("", ListExerciseLogsHandler(s))
	logs.POST("", CreateExerciseLogHandler(s))
	logs.PATCH("/:id", UpdateExerciseLogHandler(s))
	logs.DELETE("/:id", DeleteExerciseLogHandler(s))

	// Auth routes
	auth := r.Group("/auth")
	auth.POST("/register", RegisterHandler(s))
	auth.POST("/login", LoginHandler(s, deps.Tokens, deps.SecretKey, deps.CookieSecure))
	auth.POST("/logout", requireAuth, LogoutHandler(deps.Denylist, deps.CookieSecure))

	return r
}

// IndexHandler reports that the API is up
func IndexHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Fitness Tracker API is running!"})
}
