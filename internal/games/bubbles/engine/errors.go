package engine

import "errors"

var (
	// ErrGridMismatch reports a static bubble whose position no longer maps
	// to its recorded cell. It indicates a geometry bug, not a player error.
	ErrGridMismatch = errors.New("engine: bubble position disagrees with its grid cell")

	// ErrCellOccupied is returned when placing a bubble into a taken cell.
	ErrCellOccupied = errors.New("engine: cell already occupied")

	// ErrCellOutOfBounds is returned when placing a bubble outside the playfield.
	ErrCellOutOfBounds = errors.New("engine: cell outside playfield")

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("engine: invalid config")
)
