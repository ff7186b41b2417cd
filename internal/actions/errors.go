package actions

import (
	"errors"
)

// Named validation failures. These are raised before any mutation, so
// a failed action leaves the store untouched.
var (
	ErrDuplicateBadgePoints   = errors.New("a badge level with that min_points already exists")
	ErrReservedBadge          = errors.New("badge level is a reserved system badge and cannot be deleted")
	ErrAchievementAlreadyHeld = errors.New("user already holds this achievement")
	ErrInvalidTargetType      = errors.New("unknown violation target type")
	ErrAppealNotFound         = errors.New("appeal not found")
	ErrViolationNotFound      = errors.New("violation not found")
	ErrAppealAlreadyResolved  = errors.New("appeal has already been resolved")
	ErrUserNotFound           = errors.New("user not found")
	ErrAchievementNotFound    = errors.New("achievement not found")
)
