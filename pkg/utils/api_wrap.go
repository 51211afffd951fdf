package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP status codes.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCountryNotFound):
		RespondError(c, http.StatusNotFound, "Country not found")
	case errors.Is(err, ErrOperatorNotFound):
		RespondError(c, http.StatusNotFound, "Operator not found")
	case errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, "Plan not found")
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidDuration):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrStorageFailure):
		log.Printf("Storage failure: %v", err)
		RespondError(c, http.StatusInsufficientStorage, "Could not persist the contribution, please retry")
	case errors.Is(err, ErrAdvisorUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "The advisor is currently offline, please try again later")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
