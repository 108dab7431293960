package service

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidDate   = errors.New("invalid date")
	ErrWeakPassword  = errors.New("password must be at least 8 characters long and contain an uppercase, lowercase, digit and special character")
	ErrUnderage      = errors.New("volunteer must be at least 18 years old")
	// ErrUnknownEvent is returned when the event an operation refers to does not exist.
	ErrUnknownEvent = errors.New("event does not exist")
)
