package grid

import (
	"errors"
	"fmt"
)

// MaxDimension caps both the column and the row count of a loaded maze.
// It bounds the memory of a grid and the recursion depth of dfs.
const MaxDimension = 256

// Unreachable is the distance reported when no exit can be reached from a
// start cell, or when the start cell lies outside the grid.
const Unreachable = -1

// NotLoadedNotice is written by Render ahead of the (empty) rendering of a
// grid that holds no maze.
const NotLoadedNotice = "Error: Maze not in a valid state."

// Sentinel errors for grid loading.
var (
	// ErrOpen indicates the maze file could not be opened.
	ErrOpen = errors.New("grid: cannot open maze file")
	// ErrHeader indicates a missing or malformed "<columns>,<rows>" header.
	ErrHeader = errors.New("grid: malformed header")
	// ErrTooLarge indicates a header dimension above MaxDimension.
	ErrTooLarge = errors.New("grid: maze dimensions too large")
	// ErrMissingRow indicates the input ended before all rows were read.
	ErrMissingRow = errors.New("grid: missing row")
	// ErrShortRow indicates a row with fewer cells than the header announced.
	ErrShortRow = errors.New("grid: row has too few cells")
	// ErrInvalidCell indicates a cell character outside {0,1,2}.
	ErrInvalidCell = errors.New("grid: invalid cell character")
)

// Kind classifies a single maze cell.
type Kind uint8

const (
	// Clear cells can be walked through.
	Clear Kind = iota
	// Blocked cells can never be entered.
	Blocked
	// Exit cells end a search.
	Exit
)

// ParseKind maps a maze file character to its Kind.
// Returns ErrInvalidCell for anything other than '0', '1' or '2'.
func ParseKind(r rune) (Kind, error) {
	switch r {
	case '0':
		return Clear, nil
	case '1':
		return Blocked, nil
	case '2':
		return Exit, nil
	default:
		return Clear, fmt.Errorf("%w: %q", ErrInvalidCell, r)
	}
}

// Symbol returns the glyph Render uses for k.
func (k Kind) Symbol() byte {
	switch k {
	case Blocked:
		return 'B'
	case Clear:
		return '.'
	case Exit:
		return 'X'
	default:
		return '?'
	}
}

func (k Kind) String() string {
	switch k {
	case Clear:
		return "clear"
	case Blocked:
		return "blocked"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
