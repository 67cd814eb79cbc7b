package store

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateID     = errors.New("duplicate id")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrValidation      = errors.New("validation failed")
)
