package model

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrNoChanges        = errors.New("no fields to update")
	ErrUnsupportedField = errors.New("unsupported field")
)

var (
	ErrUnauthenticated = errors.New("not logged in")
	ErrForbiddenRole   = errors.New("session role not allowed")
	ErrNotOwner        = errors.New("event is not owned by association")
)

var (
	ErrAlreadyJoined = errors.New("volunteer already joined event")
	ErrNotJoined     = errors.New("volunteer did not join event")
	ErrEventFull     = errors.New("event reached max capacity")
)
