package errors

import "errors"

// Custom application errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("incorrect email or password")
	ErrUnauthorized          = errors.New("authentication required")
	ErrReminderNotFound      = errors.New("reminder not found")
	ErrRefillNotFound        = errors.New("refill item not found")
	ErrDosageNotFound        = errors.New("dosage not found")
	ErrValidation            = errors.New("invalid input")
	ErrDatabaseOperation     = errors.New("database operation failed")
	ErrNoDueReminder         = errors.New("no reminder is currently due") // Acknowledge called while nothing is due
	ErrSuggestionUnavailable = errors.New("refill suggestions are not configured")
	ErrSuggestionFailed      = errors.New("could not get a suggestion at this time")
	ErrRateLimited           = errors.New("too many requests, try again later")
	ErrScheduling            = errors.New("scheduling failed")
	ErrInternalServer        = errors.New("internal server error")
)
