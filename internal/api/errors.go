package api

import (
	"encoding/json" // JSON decode errors
	"errors"        // Error inspection
	"io"            // Empty body detection
	"net/http"      // HTTP status codes
	"reflect"       // Struct field tags
	"strconv"       // Path id parsing
	"strings"       // String manipulation
	"sync"          // One-time validator setup

	"fitness_tracker/internal/apperr" // Application error kinds

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/gin-gonic/gin/binding"       // Gin request binding
	"github.com/go-playground/validator/v10" // Validation errors
	"github.com/sirupsen/logrus"             // Logrus for structured logging
)

var registerTagNameOnce sync.Once

// registerJSONFieldNames makes validation errors name the JSON field
func registerJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
}

// bindCreate decodes a create body; every failure is a ValidationError
func bindCreate(c *gin.Context, req any) error {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return apperr.Validation("No input data provided")
	}
	return bindError(err)
}

// bindPatch decodes a partial update body; an absent body changes nothing
func bindPatch(c *gin.Context, req any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return bindError(err)
}

func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return apperr.Validation("Missing required fields: " + strings.Join(fields, ", "))
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperr.Validation("Invalid value for " + typeErr.Field)
	}
	return apperr.Validation("Invalid request body")
}

// parseID reads the numeric :id path parameter; anything else is unknown
func parseID(c *gin.Context, entity string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.NotFound(entity + " not found")
	}
	return uint(id), nil
}

// respondError writes the error as JSON; unexpected errors are logged and hidden
func respondError(c *gin.Context, err error, action string) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		// Log the error with context
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method, // HTTP method
			"path":   c.Request.URL.Path,
			"error":  err.Error(), // Error message
		}).Error("Failed to " + action)
		c.JSON(status, gin.H{"error": "Failed to " + action})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
