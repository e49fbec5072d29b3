package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound        = errors.New("entity not found")
	ErrAlreadyExists   = errors.New("entity already exists")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnavailable     = errors.New("completion provider unavailable")
	ErrSessionClosed   = errors.New("coaching session is not active")
)
