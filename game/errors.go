package game

import "errors"

var (
	// ErrNotFound is returned when the viewport or the player is missing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidVariant is returned when a variant draw falls outside the known kinds.
	ErrInvalidVariant = errors.New("invalid variant")
	// ErrPlayerExists is returned when a second player is spawned.
	ErrPlayerExists = errors.New("player already exists")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid config")
)
