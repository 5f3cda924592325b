package api

import (
	"errors"   // Error inspection
	"io"       // Empty body detection
	"net/http" // HTTP status codes

	"fitness_tracker/internal/apperr"     // Application error kinds
	"fitness_tracker/internal/domain"     // Importing domain models
	"fitness_tracker/internal/middleware" // Cookie names and context keys
	"fitness_tracker/internal/store"      // Persistence handle
	"fitness_tracker/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Name     string `json:"name"`     // Name must be provided
	Email    string `json:"email"`    // Email must be provided
	Password string `json:"password"` // Password must be provided
	GoalID   *uint  `json:"goal_id"`  // Optional goal to link
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`    // Email must be provided
	Password string `json:"password"` // Password must be provided
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	AccessToken string      `json:"access_token"` // Signed JWT
	User        domain.User `json:"user"`         // Public user representation
}

// RegisterHandler creates a user with a hashed password
func RegisterHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil && !isEmptyBody(err) {
			respondError(c, bindError(err), "register user")
			return
		}
		// Validate presence of the credentials
		if req.Name == "" || req.Email == "" || req.Password == "" {
			respondError(c, apperr.Validation("name, email and password are required"), "register user")
			return
		}
		// Hash the password and create the user
		user, err := newUser(req.Name, req.Email, req.Password)
		if err != nil {
			respondError(c, err, "hash password")
			return
		}
		// A duplicate email is reported as a conflict
		if err := s.CreateUser(&user, store.GoalRef{ID: req.GoalID}); err != nil {
			respondError(c, err, "register user")
			return
		}
		logUserCreated(user)
		c.JSON(http.StatusCreated, user) // Return the created user
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(s *store.Store, tokens *utils.TokenManager, secretKey string, cookieSecure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil && !isEmptyBody(err) {
			respondError(c, bindError(err), "log in")
			return
		}
		if req.Email == "" || req.Password == "" {
			respondError(c, apperr.Validation("email and password are required"), "log in")
			return
		}
		user, err := s.FindUserByEmail(req.Email) // Fetch user from database
		if err != nil && !apperr.Is(err, apperr.KindNotFound) {
			respondError(c, err, "log in")
			return
		}
		// Unknown email and wrong password look the same to the caller
		if err != nil || !utils.VerifyPassword(user.PasswordHash, req.Password) {
			logrus.WithField("email", req.Email).Warn("Invalid login")
			respondError(c, apperr.Auth("invalid credentials"), "log in")
			return
		}
		// Generate JWT token
		token, claims, err := tokens.Generate(user.ID)
		if err != nil {
			respondError(c, err, "generate token")
			return
		}
		setAuthCookies(c, token, utils.CSRFToken(secretKey, claims.ID), cookieSecure)
		logrus.WithField("user_id", user.ID).Info("User logged in")
		// Return the token in the response
		c.JSON(http.StatusOK, LoginResponse{AccessToken: token, User: user})
	}
}

// LogoutHandler revokes the presented token and clears the auth cookies
func LogoutHandler(denylist utils.Denylist, cookieSecure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := c.MustGet(middleware.ContextClaims).(*utils.Claims) // Set by JWTAuthMiddleware
		if denylist != nil {
			if err := denylist.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
				respondError(c, err, "revoke token")
				return
			}
		}
		clearAuthCookies(c, cookieSecure)
		logrus.WithField("user_id", claims.Subject).Info("User logged out")
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// isEmptyBody treats a missing body like an empty object
func isEmptyBody(err error) bool {
	return errors.Is(err, io.EOF)
}

// setAuthCookies hands the token to browsers: HttpOnly for the token,
// readable for the CSRF value the frontend echoes back
func setAuthCookies(c *gin.Context, token, csrf string, secure bool) {
	maxAge := int(utils.AccessTokenTTL.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessCookieName, token, maxAge, "/", "", secure, true)
	c.SetCookie(middleware.CSRFCookieName, csrf, maxAge, "/", "", secure, false)
}

func clearAuthCookies(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessCookieName, "", -1, "/", "", secure, true)
	c.SetCookie(middleware.CSRFCookieName, "", -1, "/", "", secure, false)
}
