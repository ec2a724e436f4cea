package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Load clears the grid and reads a maze from the file at path.
// See Read for the format and the returned errors; an unreadable file
// yields ErrOpen.
func (g *Grid) Load(path string) error {
	g.Clear()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer f.Close()

	return g.Read(f)
}

// Read clears the grid and parses a maze from r.
//
// Behavior:
//  1. The first line must be "<columns>,<rows>": two unsigned integers
//     separated by a comma (blanks around either number are tolerated).
//  2. Neither dimension may exceed MaxDimension.
//  3. Each of the next <rows> lines must hold at least <columns> cell
//     characters. Whitespace between cells is skipped, so "0 1 2" and "012"
//     are equivalent; anything after the last expected cell is ignored.
//
// Cells are committed only once every row has parsed, so on error the grid
// stays empty. Errors wrap ErrHeader, ErrTooLarge, ErrMissingRow, ErrShortRow
// or ErrInvalidCell together with the offending line number.
// Complexity: O(R×C) time and memory.
func (g *Grid) Read(r io.Reader) error {
	g.Clear()

	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrHeader, err)
		}
		return fmt.Errorf("%w: empty input", ErrHeader)
	}
	columns, rows, err := parseHeader(sc.Text())
	if err != nil {
		return err
	}

	cells := make([][]Kind, rows)
	for row := 0; row < rows; row++ {
		line := row + 2 // 1-based, after the header
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return fmt.Errorf("%w: line %d: %v", ErrMissingRow, line, err)
			}
			return fmt.Errorf("%w: line %d: expected %d rows", ErrMissingRow, line, rows)
		}
		if cells[row], err = parseRow(sc.Text(), columns); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}

	g.rows, g.columns, g.cells = rows, columns, cells

	return nil
}

// parseHeader splits "<columns>,<rows>" and enforces MaxDimension.
func parseHeader(line string) (columns, rows int, err error) {
	colField, rowField, ok := strings.Cut(line, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q: want <columns>,<rows>", ErrHeader, line)
	}
	c, err := strconv.ParseUint(strings.TrimSpace(colField), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: columns %q: %v", ErrHeader, colField, err)
	}
	r, err := strconv.ParseUint(strings.TrimSpace(rowField), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: rows %q: %v", ErrHeader, rowField, err)
	}
	if c > MaxDimension || r > MaxDimension {
		return 0, 0, fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrTooLarge, c, r, MaxDimension, MaxDimension)
	}

	return int(c), int(r), nil
}

// parseRow reads the first columns non-space characters of line as cells.
func parseRow(line string, columns int) ([]Kind, error) {
	row := make([]Kind, columns)
	col := 0
	for _, ch := range line {
		if col == columns {
			break
		}
		if unicode.IsSpace(ch) {
			continue
		}
		k, err := ParseKind(ch)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", col, err)
		}
		row[col] = k
		col++
	}
	if col < columns {
		return nil, fmt.Errorf("%w: got %d of %d", ErrShortRow, col, columns)
	}

	return row, nil
}
