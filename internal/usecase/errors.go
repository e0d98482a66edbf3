package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnsupportedSport      = errors.New("sport not supported")
	ErrNoGamesFound          = errors.New("no recent games found")
	ErrRateLimited           = errors.New("rate limit exceeded")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
