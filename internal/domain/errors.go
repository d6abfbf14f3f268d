package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by a usecase either wraps one of these
// or is treated as an internal failure at the HTTP boundary.
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidInput        = errors.New("invalid input")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrCapacityExceeded    = errors.New("capacity exceeded")
	ErrConflict            = errors.New("conflict")
	ErrInvalidReference    = errors.New("invalid reference")
	ErrPreferencesRequired = errors.New("preferences required")
	ErrTransient           = errors.New("temporarily unavailable")
)

var (
	ErrUserNotFound         = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrProfileNotFound      = fmt.Errorf("%w: profile not found", ErrNotFound)
	ErrMatchNotFound        = fmt.Errorf("%w: match not found", ErrNotFound)
	ErrImageNotFound        = fmt.Errorf("%w: image not found", ErrNotFound)
	ErrPromptNotFound       = fmt.Errorf("%w: prompt not found", ErrNotFound)
	ErrVerificationNotFound = fmt.Errorf("%w: verification expired or unknown", ErrNotFound)

	ErrNotMatchParticipant = fmt.Errorf("%w: not a participant of this match", ErrForbidden)

	ErrTooManyImages  = fmt.Errorf("%w: maximum %d images allowed", ErrCapacityExceeded, MaxImages)
	ErrTooManyPrompts = fmt.Errorf("%w: maximum %d prompts allowed", ErrCapacityExceeded, MaxPrompts)

	ErrCannotInteractSelf = fmt.Errorf("%w: cannot interact with yourself", ErrInvalidInput)
	ErrInvalidAction      = fmt.Errorf("%w: action must be LIKE or PASS", ErrInvalidInput)
	ErrInvalidContext     = fmt.Errorf("%w: context type must be IMAGE or PROMPT", ErrInvalidInput)
	ErrCommentTooLong     = fmt.Errorf("%w: comment must be at most %d characters", ErrInvalidInput, MaxCommentLength)
	ErrInvalidOrder       = fmt.Errorf("%w: display order out of range", ErrInvalidInput)
	ErrEmptyMessage       = fmt.Errorf("%w: message text cannot be empty", ErrInvalidInput)
	ErrMessageTooLong     = fmt.Errorf("%w: message text too long", ErrInvalidInput)
	ErrInvalidCursor      = fmt.Errorf("%w: cursor must be an RFC3339 timestamp", ErrInvalidInput)
	ErrInvalidLimit       = fmt.Errorf("%w: limit must be positive", ErrInvalidInput)
	ErrInvalidAgeRange    = fmt.Errorf("%w: age range min must not exceed max", ErrInvalidInput)

	ErrInvalidCode     = fmt.Errorf("%w: invalid verification code", ErrUnauthorized)
	ErrTooManyAttempts = fmt.Errorf("%w: too many verification attempts", ErrUnauthorized)
	ErrInvalidToken    = fmt.Errorf("%w: invalid token", ErrUnauthorized)
	ErrMissingToken    = fmt.Errorf("%w: missing authorization token", ErrUnauthorized)
)
