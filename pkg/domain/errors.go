package domain

import "errors"

// Common domain errors
var (
	// ErrFriendNotFound is returned when a requested friend does not exist
	ErrFriendNotFound = errors.New("friend not found")
	// ErrNameTooShort is returned when a friend name has fewer than two characters after trimming
	ErrNameTooShort = errors.New("name must be at least 2 characters")
	// ErrAmountNotPositive is returned when a liter or payment amount is not a positive number
	ErrAmountNotPositive = errors.New("amount must be a positive number")
	// ErrUnauthorized is returned when the app password is missing or wrong
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPasswordNotConfigured is returned when no app password is configured on the server
	ErrPasswordNotConfigured = errors.New("app password is not configured")
)
