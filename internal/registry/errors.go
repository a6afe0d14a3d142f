package registry

import "errors"

var (
	// ErrEmptyQuery is returned when a search query is empty or whitespace-only.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrUnknownGroup is returned when a requested group has not been loaded.
	ErrUnknownGroup = errors.New("unknown documentation group")

	// ErrInvalidLimit is returned when a result limit is zero or negative.
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)
