package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"returnfilers/pkg/calculator"
	"returnfilers/pkg/repository"
	"returnfilers/pkg/response"

	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidParam       = errors.New("invalid parameter")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrUnauthorized       = errors.New("unauthorized")

	// ErrFeatureDisabled hides an endpoint whose feature is switched off in settings
	ErrFeatureDisabled = errors.New("feature disabled")
)

// APIError pins an HTTP status and a client-facing message to an error
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func NewAPIError(code int, message string, err error) *APIError {
	return &APIError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string, err error) *APIError {
	return NewAPIError(http.StatusBadRequest, message, err)
}

func NewNotFoundError(message string, err error) *APIError {
	return NewAPIError(http.StatusNotFound, message, err)
}

func NewInternalServerError(message string, err error) *APIError {
	return NewAPIError(http.StatusInternalServerError, message, err)
}

// statusFor maps sentinel errors from this and lower packages to a status and message
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidParam):
		return http.StatusBadRequest, "Invalid parameter"
	case errors.Is(err, calculator.ErrInvalidAmount), errors.Is(err, calculator.ErrUnsupportedRate):
		return http.StatusBadRequest, "Invalid calculator input"
	case errors.Is(err, repository.ErrLeadNotFound):
		return http.StatusNotFound, "Lead not found"
	case errors.Is(err, ErrResourceNotFound), errors.Is(err, ErrFeatureDisabled):
		// disabled features look absent to the public site
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable, "Service unavailable"
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// HandleError writes err as an error envelope and aborts the request
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		response.Error(c, apiErr.Code, apiErr.Message, apiErr.Err)
		return
	}

	code, message := statusFor(err)
	response.Error(c, code, message, err)
}
