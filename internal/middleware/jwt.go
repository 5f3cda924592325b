package middleware

import (
	"net/http" // HTTP methods and status codes
	"strings"  // String manipulation

	"fitness_tracker/internal/apperr" // Application error kinds
	"fitness_tracker/internal/utils"  // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

const (
	AccessCookieName = "access_token_cookie" // HttpOnly cookie carrying the token
	CSRFCookieName   = "csrf_access_token"   // Readable cookie carrying the CSRF token
	CSRFHeaderName   = "X-CSRF-TOKEN"        // Header echoing the CSRF token

	ContextUserID = "userID"      // Authenticated user id (uint)
	ContextClaims = "claims"      // Parsed *utils.Claims
	ContextUser   = "currentUser" // Loaded domain.User
)

// JWTAuthMiddleware validates the access token from the Authorization header
// or the auth cookie. Cookie-delivered tokens on unsafe methods must echo the
// CSRF token in a header. Revoked tokens are rejected.
func JWTAuthMiddleware(tokens *utils.TokenManager, denylist utils.Denylist, csrfSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, fromCookie := extractToken(c) // Header first, then cookie
		if tokenStr == "" {
			abort(c, apperr.Auth("Missing authorization token"))
			return
		}
		claims, err := tokens.Parse(tokenStr) // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			abort(c, apperr.Auth("Invalid or expired token"))
			return
		}
		// Cookies are sent by the browser automatically, so demand the CSRF echo
		if fromCookie && !isSafeMethod(c.Request.Method) && !utils.ValidCSRFToken(csrfSecret, claims.ID, c.GetHeader(CSRFHeaderName)) {
			abort(c, apperr.Auth("Missing or invalid CSRF token"))
			return
		}
		if denylist != nil {
			revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				logrus.WithError(err).Error("Denylist lookup failed")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify token"})
				return
			}
			if revoked {
				abort(c, apperr.Auth("Token has been revoked"))
				return
			}
		}
		userID, _ := claims.UserID() // Parse already checked the subject
		c.Set(ContextUserID, userID) // Store userID in context
		c.Set(ContextClaims, claims) // Store claims for logout
		c.Next()                     // Proceed to the next handler
	}
}

// extractToken returns the raw token and whether it came from the cookie
func extractToken(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", false // Malformed header, do not fall back to the cookie
		}
		return strings.TrimPrefix(authHeader, "Bearer "), false
	}
	if cookie, err := c.Cookie(AccessCookieName); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// abort stops the chain with the error's status and message
func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperr.Status(err), gin.H{"error": err.Error()})
}
