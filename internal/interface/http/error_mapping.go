package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-user-directory/internal/application"
	"github.com/oksasatya/go-user-directory/pkg/response"
	"github.com/oksasatya/go-user-directory/pkg/validation"
)

// ErrorCase maps a sentinel error to an HTTP status code and response message.
type ErrorCase struct {
	Err     error
	Status  int
	Message string
}

var (
	directoryErrorCases = []ErrorCase{
		{Err: application.ErrNotFound, Status: http.StatusNotFound, Message: "user not found"},
	}
	credentialErrorCases = []ErrorCase{
		{Err: application.ErrInvalidInput, Status: http.StatusBadRequest, Message: "username and password are required"},
		{Err: application.ErrDuplicateUsername, Status: http.StatusConflict, Message: "username already exists"},
		{Err: application.ErrInvalidCredentials, Status: http.StatusUnauthorized, Message: "invalid credentials"},
	}
)

// RespondWithMappedError resolves err against cases in order, falling back to fallbackStatus.
// Only the case message is sent; the wrapped cause stays in the logs.
func RespondWithMappedError(c *gin.Context, err error, cases []ErrorCase, fallbackStatus int, fallbackMessage string) {
	for _, cs := range cases {
		if cs.Err != nil && errors.Is(err, cs.Err) {
			response.Error[any](c, cs.Status, cs.Message, errorKind(cs.Err))
			return
		}
	}
	_ = c.Error(err)
	response.Error[any](c, fallbackStatus, fallbackMessage, errorKind(err))
}

// respondInvalidInput reports a rejected request body under the invalid_input kind,
// the same kind the services return; per-field messages go in meta.fields.
func respondInvalidInput(c *gin.Context, message string, err error) {
	response.ErrorWithMeta[any](c, http.StatusBadRequest, message, errorKind(application.ErrInvalidInput),
		gin.H{"fields": validation.ToDetails(err)})
}

// errorKind names the failure class for the error field of the envelope.
func errorKind(err error) string {
	switch {
	case errors.Is(err, application.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, application.ErrDuplicateUsername):
		return "duplicate_username"
	case errors.Is(err, application.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, application.ErrNotFound):
		return "not_found"
	case errors.Is(err, application.ErrStorageFailure):
		return "storage_failure"
	default:
		return "internal"
	}
}
