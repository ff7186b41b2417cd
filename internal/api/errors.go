package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lingohub/admind/internal/actions"
)

// Error represents an API error
type Error struct {
	Code    int
	Message string
}

// NewError creates a new API error
func NewError(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// abortWithError writes a JSON error body with the status mapped from
// the action catalog's sentinel errors.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, actions.ErrAppealNotFound),
		errors.Is(err, actions.ErrViolationNotFound),
		errors.Is(err, actions.ErrUserNotFound),
		errors.Is(err, actions.ErrAchievementNotFound):
		status = http.StatusNotFound
	case errors.Is(err, actions.ErrDuplicateBadgePoints),
		errors.Is(err, actions.ErrInvalidTargetType),
		errors.Is(err, actions.ErrAchievementAlreadyHeld),
		errors.Is(err, actions.ErrAppealAlreadyResolved):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, actions.ErrReservedBadge):
		status = http.StatusForbidden
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		status = apiErr.Code
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
