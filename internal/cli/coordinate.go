package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrCoordinate is returned for a start position that is malformed or
// outside the maze.
var ErrCoordinate = errors.New("invalid start position")

// ParseCoordinate reads a "column,row" pair, the order users type it in,
// and checks it against a maze of rows×columns cells.
func ParseCoordinate(s string, rows, columns int) (row, column int, err error) {
	colField, rowField, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q: want column,row", ErrCoordinate, s)
	}
	if column, err = strconv.Atoi(strings.TrimSpace(colField)); err != nil {
		return 0, 0, fmt.Errorf("%w: column %q", ErrCoordinate, colField)
	}
	if row, err = strconv.Atoi(strings.TrimSpace(rowField)); err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", ErrCoordinate, rowField)
	}
	if column < 0 || column >= columns || row < 0 || row >= rows {
		return 0, 0, fmt.Errorf("%w: %d,%d outside %d columns × %d rows", ErrCoordinate, column, row, columns, rows)
	}
	return row, column, nil
}

// describe turns a search distance into the message shown to users.
func describe(distance int) string {
	if distance < 0 {
		return "No solvable minimum path..."
	}
	return fmt.Sprintf("Minimum path in %d steps.", distance)
}
