package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketing-cms-api/internal/service"
	"github.com/marketing-cms-api/internal/validation"
)

// Response is the envelope every endpoint returns. Success carries data;
// failure carries a message and, for validation failures, the full field
// error list.
type Response struct {
	Success bool                    `json:"success"`
	Data    interface{}             `json:"data,omitempty"`
	Message string                  `json:"message,omitempty"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// ListData wraps list items with pagination metadata inside the envelope
type ListData struct {
	Items      interface{} `json:"items"`
	Pagination interface{} `json:"pagination"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

func respondValidation(c *gin.Context, fieldErrors []validation.FieldError) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "validation failed",
		Errors:  fieldErrors,
	})
}

// respondServiceError maps service sentinel errors to HTTP statuses.
// Anything unrecognized is a 500 with a generic message; the details stay
// in the logs.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrConflict):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrInvalidSlug):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
