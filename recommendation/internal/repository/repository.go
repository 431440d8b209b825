package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record is not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when creating a record whose name is taken.
	ErrAlreadyExists = errors.New("already exists")
)
