// Package grid holds a rectangular maze of cells loaded from a small
// delimited text format, and exposes bounds-checked access for the search
// packages (bfs, dfs).
//
// What:
//
//   - Kind classifies a cell: Clear ('0'), Blocked ('1') or Exit ('2').
//   - Grid owns the dimensions and a Rows()×Columns() matrix of kinds.
//   - Load / Read parse the maze format, validating the header, the
//     dimension cap and every cell character.
//   - Render prints the maze one glyph per cell ('.', 'B', 'X').
//
// File format:
//
//	<columns>,<rows>
//	<row 0: columns characters from {0,1,2}, optionally whitespace-separated>
//	...
//	<row rows-1>
//
// The header lists columns first and rows second, while every accessor takes
// (row, column). Keep that inversion in mind when writing maze files by hand.
//
// Lifecycle:
//
//   - New returns an empty grid (Loaded() == false).
//   - Load / Read clear the grid first and commit the parsed cells only when
//     the whole input is valid; a failed load always leaves the grid empty.
//   - The grid is read-only between loads, so any number of searches may read
//     it concurrently.
//
// Errors:
//
//   - ErrOpen:        the maze file could not be opened.
//   - ErrHeader:      the first line is missing or is not "<columns>,<rows>".
//   - ErrTooLarge:    columns or rows exceed MaxDimension.
//   - ErrMissingRow:  fewer row lines than the header announced.
//   - ErrShortRow:    a row line holds fewer than <columns> cells.
//   - ErrInvalidCell: a cell character outside {0,1,2}.
//
// Cell panics on out-of-range coordinates: callers are expected to check
// InBounds first, so a panic there marks a caller defect.
//
// Complexity:
//
//   - Load / Read: O(R×C) time and memory.
//   - Cell, InBounds, Index, Coordinate: O(1).
package grid
