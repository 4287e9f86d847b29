package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidSession      = errors.New("invalid session")
	ErrNoActiveSession     = errors.New("no active session")
	ErrActiveSessionExists = errors.New("active session already exists")
	ErrStorageCorrupt      = errors.New("history storage corrupt")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)
