package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"asset-manager-api/internal/interface/api/rest/validator"
)

// Envelope is the uniform response wrapper: success carries data,
// failure carries an error message and, for validation, the field.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Field   string `json:"field,omitempty"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, Envelope{Success: false, Error: msg})
}

func respondValidation(c *gin.Context, ferr *validator.FieldError) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Error:   ferr.Message,
		Field:   ferr.Field,
	})
}
