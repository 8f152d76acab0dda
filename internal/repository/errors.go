package repository

import "errors"

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("not found")
	// ErrInvalidFilter is returned for filters that cannot be turned into a query
	ErrInvalidFilter = errors.New("invalid filter")
)
