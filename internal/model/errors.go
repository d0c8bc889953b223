package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateUsername = errors.New("username is already registered")

	// Session errors
	ErrInvalidCredentials = errors.New("invalid credentials or account not found")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrMissingFields      = errors.New("all fields are required")

	// Announcement errors
	ErrAnnouncementNotFound = errors.New("announcement not found")

	// Validation errors
	ErrValidation = errors.New("required field is empty")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrCorruptState       = errors.New("stored state is corrupt")
)
