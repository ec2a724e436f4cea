package grid_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazefinder/grid"
)

// readGrid parses src into a fresh grid and fails the test on error.
func readGrid(t *testing.T, src string) *grid.Grid {
	t.Helper()
	g := grid.New()
	require.NoError(t, g.Read(strings.NewReader(src)))
	return g
}

func TestNew_Empty(t *testing.T) {
	g := grid.New()
	assert.False(t, g.Loaded())
	assert.Equal(t, 0, g.Rows())
	assert.Equal(t, 0, g.Columns())
	assert.False(t, g.InBounds(0, 0))
}

// TestLoad_HeaderOrder pins the header as <columns>,<rows> on a non-square maze.
func TestLoad_HeaderOrder(t *testing.T) {
	g := grid.New()
	require.NoError(t, g.Load(filepath.Join("testdata", "wide4x2.txt")))

	assert.True(t, g.Loaded())
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 4, g.Columns())
	assert.Equal(t, grid.Exit, g.Cell(1, 3))
	assert.Equal(t, grid.Blocked, g.Cell(1, 0))
	assert.Equal(t, grid.Clear, g.Cell(0, 3))
}

func TestRead_Separators(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"Spaces", "3,1\n0 1 2\n"},
		{"Packed", "3,1\n012\n"},
		{"Tabs", "3,1\n0\t1\t2\n"},
		{"CRLF", "3,1\r\n0 1 2\r\n"},
		{"TrailingJunk", "3,1\n0 1 2 9 9\n"},
		{"PaddedHeader", " 3 , 1 \n012\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := readGrid(t, tc.src)
			require.Equal(t, 1, g.Rows())
			require.Equal(t, 3, g.Columns())
			assert.Equal(t, []grid.Kind{grid.Clear, grid.Blocked, grid.Exit},
				[]grid.Kind{g.Cell(0, 0), g.Cell(0, 1), g.Cell(0, 2)})
		})
	}
}

// TestRead_Errors verifies each malformed input maps to its sentinel and
// leaves the grid empty.
func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"Empty", "", grid.ErrHeader},
		{"NoComma", "3 3\n000\n000\n000\n", grid.ErrHeader},
		{"Semicolon", "3;3\n000\n000\n000\n", grid.ErrHeader},
		{"NegativeRows", "3,-1\n", grid.ErrHeader},
		{"NotANumber", "x,3\n", grid.ErrHeader},
		{"TooManyColumns", "257,1\n", grid.ErrTooLarge},
		{"TooManyRows", "1,257\n", grid.ErrTooLarge},
		{"MissingRow", "3,3\n000\n000\n", grid.ErrMissingRow},
		{"ShortRow", "3,2\n000\n0 0\n", grid.ErrShortRow},
		{"InvalidCell", "3,2\n000\n050\n", grid.ErrInvalidCell},
		{"Letter", "2,1\n0a\n", grid.ErrInvalidCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := grid.New()
			err := g.Read(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.err)
			assert.False(t, g.Loaded())
			assert.Equal(t, 0, g.Columns())
		})
	}
}

// TestLoad_FailureClearsPrevious ensures a failed reload drops the old maze.
func TestLoad_FailureClearsPrevious(t *testing.T) {
	g := grid.New()
	require.NoError(t, g.Load(filepath.Join("testdata", "ring3x3.txt")))
	require.True(t, g.Loaded())

	err := g.Load(filepath.Join("testdata", "badcell.txt"))
	require.ErrorIs(t, err, grid.ErrInvalidCell)
	assert.False(t, g.Loaded())

	err = g.Load(filepath.Join("testdata", "does-not-exist.txt"))
	require.ErrorIs(t, err, grid.ErrOpen)
	assert.True(t, errors.Is(err, grid.ErrOpen))
	assert.False(t, g.Loaded())
}

func TestLoad_MaxDimension(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("256,256\n")
	row := strings.Repeat("0", grid.MaxDimension) + "\n"
	for i := 0; i < grid.MaxDimension; i++ {
		sb.WriteString(row)
	}
	path := filepath.Join(t.TempDir(), "max.txt")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))

	g := grid.New()
	require.NoError(t, g.Load(path))
	assert.Equal(t, grid.MaxDimension, g.Rows())
	assert.Equal(t, grid.MaxDimension, g.Columns())
}

func TestRead_ZeroRows(t *testing.T) {
	g := readGrid(t, "0,0\n")
	assert.False(t, g.Loaded())
}

func TestCell_PanicsOutOfRange(t *testing.T) {
	g := readGrid(t, "2,2\n00\n02\n")
	assert.Panics(t, func() { g.Cell(2, 0) })
	assert.Panics(t, func() { g.Cell(0, 2) })
	assert.Panics(t, func() { g.Cell(-1, 0) })
	assert.NotPanics(t, func() { g.Cell(1, 1) })
}

func TestIndexCoordinate(t *testing.T) {
	g := readGrid(t, "4,2\n0000\n1112\n")
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Columns(); c++ {
			idx := g.Index(r, c)
			gr, gc := g.Coordinate(idx)
			assert.Equal(t, [2]int{r, c}, [2]int{gr, gc}, "index %d", idx)
		}
	}
	assert.Equal(t, []int{7}, g.Exits())
}

func TestRender(t *testing.T) {
	g := grid.New()
	require.NoError(t, g.Load(filepath.Join("testdata", "ring3x3.txt")))
	assert.Equal(t, "...\n.B.\n..X\n", g.String())

	g.Clear()
	assert.Equal(t, grid.NotLoadedNotice+"\n", g.String())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "clear", grid.Clear.String())
	assert.Equal(t, "blocked", grid.Blocked.String())
	assert.Equal(t, "exit", grid.Exit.String())
	assert.Equal(t, "Kind(7)", grid.Kind(7).String())
	assert.Equal(t, byte('?'), grid.Kind(7).Symbol())
}
