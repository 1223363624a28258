package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidInput       = "INVALID_INPUT"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInvalidOperation   = "INVALID_OPERATION"
	ErrCodePaymentRequired    = "PAYMENT_REQUIRED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// APIError is the failure half of every action result. Clients treat the
// presence of "error" as the only failure signal.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

var byStatus = map[int]APIError{
	http.StatusBadRequest:          {ErrCodeInvalidInput, "Invalid request"},
	http.StatusUnauthorized:        {ErrCodeUnauthorized, "Unauthorized"},
	http.StatusPaymentRequired:     {ErrCodePaymentRequired, "Insufficient credits. Purchase credits to continue."},
	http.StatusNotFound:            {ErrCodeNotFound, "Resource not found"},
	http.StatusUnprocessableEntity: {ErrCodeInvalidOperation, "Request breaks a business rule"},
	http.StatusInternalServerError: {ErrCodeInternalError, "Internal server error"},
	http.StatusServiceUnavailable:  {ErrCodeServiceUnavailable, "Service temporarily unavailable"},
}

// ForStatus builds the error body for a status. An empty message takes the
// status default.
func ForStatus(status int, message string) *APIError {
	e, ok := byStatus[status]
	if !ok {
		e = byStatus[http.StatusInternalServerError]
	}
	if message != "" {
		e.Message = message
	}
	return &e
}

// AbortWithError sends an error response and stops the handler chain
func AbortWithError(c *gin.Context, statusCode int, err *APIError) {
	c.AbortWithStatusJSON(statusCode, err)
}

// Abort is AbortWithError for the status default body
func Abort(c *gin.Context, status int, message string) {
	AbortWithError(c, status, ForStatus(status, message))
}

func respond(c *gin.Context, status int, message string) {
	c.JSON(status, ForStatus(status, message))
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) { respond(c, http.StatusUnauthorized, message) }

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) { respond(c, http.StatusNotFound, message) }

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) { respond(c, http.StatusBadRequest, message) }

// UnprocessableEntity sends a 422 response
func UnprocessableEntity(c *gin.Context, message string) {
	respond(c, http.StatusUnprocessableEntity, message)
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) { respond(c, http.StatusInternalServerError, message) }

// ServiceUnavailable sends a 503 response
func ServiceUnavailable(c *gin.Context, message string) {
	respond(c, http.StatusServiceUnavailable, message)
}
