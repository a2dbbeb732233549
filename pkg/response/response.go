// Package response writes the {success, data, message} envelope used by every endpoint.
package response

import (
	"net/http"

	"returnfilers/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestIDKey mirrors middleware.RequestIDKey without importing it
const requestIDKey = "RequestID"

// Envelope is the JSON body shape shared by all API responses
type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Details   string      `json:"details,omitempty"`
	RequestID string      `json:"requestId,omitempty"`
}

// OK writes a 200 success envelope
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data, "")
}

// Created writes a 201 success envelope
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data, "")
}

// JSON writes a success envelope with the given status and optional message
func JSON(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Error writes a failure envelope. Details carries err's text only for 4xx
// statuses so internal failures never leak to clients.
func Error(c *gin.Context, status int, message string, err error) {
	body := Envelope{
		Success:   false,
		Message:   message,
		RequestID: c.GetString(requestIDKey),
	}

	if err != nil {
		log := logger.FromContext(c.Request.Context())
		fields := []zap.Field{
			zap.String("message", message),
			zap.Error(err),
			zap.Int("status_code", status),
		}
		if status < http.StatusInternalServerError {
			body.Details = err.Error()
			log.Warn("API request rejected", fields...)
		} else {
			log.Error("API error", fields...)
		}
	}

	c.AbortWithStatusJSON(status, body)
}
