package cache

import "errors"

var (
	// ErrNotFound is returned by Get for a key that is absent or already
	// expired at access time.
	ErrNotFound = errors.New("cache: key not found")

	// ErrInvalidConfiguration is returned by Resize for a non-positive
	// segment count. The factory package wraps it for unknown policy names.
	ErrInvalidConfiguration = errors.New("cache: invalid configuration")

	// ErrNoLoader is returned by GetOrLoad when no Loader was configured.
	ErrNoLoader = errors.New("cache: no Loader provided")
)
