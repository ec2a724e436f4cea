package grid

import (
	"fmt"
	"io"
	"strings"
)

// Grid is a rectangular maze of cells. cells[row][column] holds the kind of
// each cell; rows == 0 means no maze is loaded.
// A Grid is populated only by Load or Read and is read-only in between.
type Grid struct {
	rows    int
	columns int
	cells   [][]Kind
}

// New returns an empty, not-loaded grid.
func New() *Grid {
	return &Grid{}
}

// Loaded reports whether the grid holds a maze, i.e. whether it has at least
// one row.
func (g *Grid) Loaded() bool {
	return g.rows > 0
}

// Rows returns the number of rows (the second header field).
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns (the first header field).
func (g *Grid) Columns() int {
	return g.columns
}

// InBounds reports whether (row, column) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, column int) bool {
	return row >= 0 && row < g.rows && column >= 0 && column < g.columns
}

// Cell returns the kind of the cell at (row, column).
// It panics when the coordinate is outside the grid: search code checks
// InBounds before every access, so reaching the panic is a caller bug.
func (g *Grid) Cell(row, column int) Kind {
	if !g.InBounds(row, column) {
		panic(fmt.Sprintf("grid: cell (%d,%d) outside %dx%d maze", row, column, g.rows, g.columns))
	}
	return g.cells[row][column]
}

// Index maps (row, column) to a row-major index: row*Columns() + column.
// Complexity: O(1).
func (g *Grid) Index(row, column int) int {
	return row*g.columns + column
}

// Coordinate converts a row-major index back to (row, column).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, column int) {
	return idx / g.columns, idx % g.columns
}

// Exits returns the row-major indices of every Exit cell, in ascending order.
func (g *Grid) Exits() []int {
	var exits []int
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			if g.cells[r][c] == Exit {
				exits = append(exits, g.Index(r, c))
			}
		}
	}
	return exits
}

// Clear drops the loaded maze, leaving an empty grid.
func (g *Grid) Clear() {
	g.rows = 0
	g.columns = 0
	g.cells = nil
}

// Render writes the maze to w, one line per row and one glyph per cell
// ('.' Clear, 'B' Blocked, 'X' Exit). An empty grid renders as
// NotLoadedNotice followed by zero rows.
func (g *Grid) Render(w io.Writer) error {
	if !g.Loaded() {
		if _, err := io.WriteString(w, NotLoadedNotice+"\n"); err != nil {
			return err
		}
	}
	line := make([]byte, g.columns+1)
	line[g.columns] = '\n'
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.columns; c++ {
			line[c] = g.cells[r][c].Symbol()
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// String returns the Render output.
func (g *Grid) String() string {
	var sb strings.Builder
	_ = g.Render(&sb)
	return sb.String()
}
