package models

import (
	"errors"
	"fmt"
)

// Error kinds. Everything that does not wrap one of these is unexpected.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrAlreadyExists = errors.New("already exists")
)

func NotFoundError(entity string, id any) error {
	return fmt.Errorf("%s %v: %w", entity, id, ErrNotFound)
}

func AlreadyExistsError(entity string, id any) error {
	return fmt.Errorf("%s %v: %w", entity, id, ErrAlreadyExists)
}

func ValidationError(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
