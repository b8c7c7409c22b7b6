package application

import "errors"

// Error kinds returned by the directory and credential services.
// Callers branch on them with errors.Is.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("record not found")
	ErrStorageFailure     = errors.New("storage failure")
)
