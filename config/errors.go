package config

import "errors"

var (
	// ErrConfigNotFound is returned when an explicitly given configuration
	// file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidFormat is returned for an output format that has no renderer.
	ErrInvalidFormat = errors.New("invalid format: must be one of text, json, markdown")

	// ErrInvalidTop is returned when the number of entries is negative.
	// Use 0 to show all entries.
	ErrInvalidTop = errors.New("invalid top: must be non-negative")

	// ErrInvalidCategory is returned when a default category is unknown.
	ErrInvalidCategory = errors.New("invalid category")
)
