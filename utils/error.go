package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ServiceError is a user-visible failure with a stable code. Services
// return these for validation and precondition failures so handlers can
// surface a human-readable reason instead of a raw internal error.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// NewServiceError builds a ServiceError.
func NewServiceError(code, message string) error {
	return &ServiceError{Code: code, Message: message}
}

// HandleErrors is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondServiceError maps a service error to an HTTP response: known
// ServiceErrors become 4xx with their message, anything else becomes a
// generic 500.
func RespondServiceError(c *gin.Context, err error) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		JSONError(c, http.StatusUnprocessableEntity, svcErr.Message, svcErr.Code)
		return
	}
	JSONError(c, http.StatusInternalServerError, "Something went wrong", err.Error())
}
