package mazefinder

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazefinder/bfs"
	"github.com/katalvlaran/mazefinder/dfs"
	"github.com/katalvlaran/mazefinder/grid"
)

// Maze bundles a grid with the output and logger its entry points use.
// Searches never modify the grid; loads replace it wholesale.
type Maze struct {
	grid *grid.Grid
	out  io.Writer
	log  logrus.FieldLogger
}

// Option configures a Maze.
type Option func(*Maze)

// WithOutput sets where PrintMaze writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(m *Maze) {
		if w != nil {
			m.out = w
		}
	}
}

// WithLogger sets the logger for load failures and search diagnostics.
// Defaults to a logger that discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Maze) {
		if l != nil {
			m.log = l
		}
	}
}

// New returns a Maze with nothing loaded.
func New(opts ...Option) *Maze {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	m := &Maze{
		grid: grid.New(),
		out:  os.Stdout,
		log:  silent,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Grid exposes the underlying grid.
func (m *Maze) Grid() *grid.Grid {
	return m.grid
}

// LoadMaze replaces the current maze with the one in path.
// On failure the maze is left empty, the reason is logged at warn level,
// and false is returned.
func (m *Maze) LoadMaze(path string) bool {
	if err := m.grid.Load(path); err != nil {
		m.log.WithError(err).WithField("file", path).Warn("maze load failed")
		return false
	}
	m.log.WithFields(logrus.Fields{
		"file":    path,
		"rows":    m.grid.Rows(),
		"columns": m.grid.Columns(),
		"exits":   len(m.grid.Exits()),
	}).Info("maze loaded")
	return true
}

// MazeLoaded reports whether a maze with at least one row is loaded.
func (m *Maze) MazeLoaded() bool {
	return m.grid.Loaded()
}

// RowCount returns the number of rows of the loaded maze.
func (m *Maze) RowCount() int {
	return m.grid.Rows()
}

// ColumnCount returns the number of columns of the loaded maze.
func (m *Maze) ColumnCount() int {
	return m.grid.Columns()
}

// PrintMaze renders the maze to the configured output.
func (m *Maze) PrintMaze() {
	if err := m.grid.Render(m.out); err != nil {
		m.log.WithError(err).Error("maze render failed")
	}
}

// MinimumSpacesBFS returns the fewest moves from (row, column) to an exit
// using breadth-first search, or -1.
func (m *Maze) MinimumSpacesBFS(row, column int) int {
	res, err := bfs.MinimumSpaces(m.grid, row, column)
	if err != nil {
		m.log.WithError(err).WithField("algorithm", "bfs").Error("search failed")
		return grid.Unreachable
	}
	m.logSearch("bfs", row, column, res.Distance, res.Steps)
	return res.Distance
}

// MinimumSpacesDFS returns the fewest moves from (row, column) to an exit
// using backtracking depth-first search, or -1.
func (m *Maze) MinimumSpacesDFS(row, column int) int {
	res, err := dfs.MinimumSpaces(m.grid, row, column)
	if err != nil {
		m.log.WithError(err).WithField("algorithm", "dfs").Error("search failed")
		return grid.Unreachable
	}
	m.logSearch("dfs", row, column, res.Distance, res.Steps)
	return res.Distance
}

func (m *Maze) logSearch(algorithm string, row, column, distance, steps int) {
	m.log.WithFields(logrus.Fields{
		"algorithm": algorithm,
		"row":       row,
		"column":    column,
		"distance":  distance,
		"steps":     steps,
	}).Debug("search finished")
}
