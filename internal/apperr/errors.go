package apperr

import "errors"

var (
	ErrAlreadyExists   = errors.New("already exists")
	ErrNoDocument      = errors.New("no document")
	ErrUnknownStrategy = errors.New("unknown strategy")
)
