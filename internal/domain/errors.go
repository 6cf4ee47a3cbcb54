package domain

import "errors"

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates invalid request
	ErrInvalidRequest = errors.New("invalid request")
	// ErrSearchUnavailable indicates the search capability failed as a whole
	ErrSearchUnavailable = errors.New("search unavailable")
)
