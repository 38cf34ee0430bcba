package core

import "errors"

var (
	// ErrOutOfRange is returned for coordinates outside the grid.
	ErrOutOfRange = errors.New("match3: coordinates out of range")

	// ErrCascadeLimit is returned when a cascade does not settle within
	// the resolver's step bound.
	ErrCascadeLimit = errors.New("match3: cascade did not settle")

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("match3: invalid config")
)
