package generate

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRooms is reported when every room placement attempt was rejected.
	ErrNoRooms = errors.New("no rooms placed")
	// ErrUnreachable is reported when a walkable cell cannot be reached from
	// the spawn point.
	ErrUnreachable = errors.New("walkable cells unreachable from spawn")
)

// GenerationError describes a level that could not be built.
type GenerationError struct {
	Width, Height int
	Rooms         int
	Err           error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %dx%d map (%d rooms): %v", e.Width, e.Height, e.Rooms, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// InsufficientSpaceError reports a spawn request larger than the number of
// free cells. The spawner still places Available entities.
type InsufficientSpaceError struct {
	What      string
	Requested int
	Available int
}

func (e *InsufficientSpaceError) Error() string {
	return fmt.Sprintf("spawn %s: requested %d, only %d free cells", e.What, e.Requested, e.Available)
}
