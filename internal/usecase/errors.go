package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("conflict")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

func isConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func isInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
