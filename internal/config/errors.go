package config

import "errors"

// Errors returned while resolving and validating presets.
var (
	// ErrUnknownPreset indicates no embedded preset has the requested name.
	ErrUnknownPreset = errors.New("config: unknown preset")

	// ErrUnknownColor indicates a color that is neither a palette name nor #rrggbb.
	ErrUnknownColor = errors.New("config: unknown color")

	// ErrInvalidBody indicates a body with a negative radius or size, or a
	// speed outside [0, 360).
	ErrInvalidBody = errors.New("config: invalid body")

	// ErrInvalidCanvas indicates non-positive dimensions, delay or flatten.
	ErrInvalidCanvas = errors.New("config: invalid canvas settings")
)
