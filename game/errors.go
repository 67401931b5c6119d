package game

import (
	"errors"
	"fmt"
)

// Typed outcomes surfaced across the core API. ErrOutOfBounds and
// ErrCellVisited are specific kinds of invalid move, so
// errors.Is(err, ErrInvalidMove) matches both.
var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidMove          = errors.New("invalid move")
	ErrOutOfBounds          = fmt.Errorf("%w: destination out of bounds", ErrInvalidMove)
	ErrCellVisited          = fmt.Errorf("%w: destination already visited", ErrInvalidMove)
	ErrNoLegalMove          = errors.New("no legal move")
)
