package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazefinder"
	"github.com/katalvlaran/mazefinder/grid"
)

// Menu options, as typed by the user.
const (
	optionLoad   = '1'
	optionPrint  = '2'
	optionDFS    = '3'
	optionBFS    = '4'
	optionReload = '5'
	optionQuit   = 'q'
)

var (
	// alwaysOptions are accepted whether or not a file is loaded.
	alwaysOptions = mapset.Of[rune](optionLoad, optionQuit)
	// loadedOptions need a loaded file.
	loadedOptions = mapset.Of[rune](optionPrint, optionDFS, optionBFS, optionReload)
)

func newInteractiveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive [FILE]",
		Short: "Run the menu-driven console: load, print, and search mazes",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &session{
				in:   bufio.NewScanner(cmd.InOrStdin()),
				out:  cmd.OutOrStdout(),
				maze: a.newMaze(cmd),
			}
			if file, err := a.mazeFile(args); err == nil {
				s.load(file, "Error loading file")
			}
			return s.run()
		},
	}
}

// session is one interactive console run. filename is empty while no maze
// file is loaded.
type session struct {
	in       *bufio.Scanner
	out      io.Writer
	maze     *mazefinder.Maze
	filename string
}

// run loops over menu selections until the user quits or input ends.
func (s *session) run() error {
	for {
		choice, err := s.option()
		if err != nil {
			return ignoreEOF(err)
		}
		if choice == optionQuit {
			return nil
		}
		if err = s.dispatch(choice); err != nil {
			return ignoreEOF(err)
		}
	}
}

func (s *session) dispatch(choice rune) error {
	switch choice {
	case optionLoad:
		fmt.Fprint(s.out, "Please enter the maze filename: ")
		name, err := s.readLine()
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Loading file...")
		s.load(name, "Error loading file")
	case optionPrint:
		fmt.Fprintln(s.out, "Printing maze...")
		s.maze.PrintMaze()
	case optionDFS:
		fmt.Fprintln(s.out, "Executing Depth First Search...")
		return s.search(s.maze.MinimumSpacesDFS)
	case optionBFS:
		fmt.Fprintln(s.out, "Executing Breadth First Search...")
		return s.search(s.maze.MinimumSpacesBFS)
	case optionReload:
		fmt.Fprintln(s.out, "Reloading File...")
		s.load(s.filename, "Error reloading file")
	}
	return nil
}

// option shows the menu until a valid single-character choice is entered.
func (s *session) option() (rune, error) {
	for {
		s.displayMenu()
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		choice := []rune(strings.ToLower(line))
		if len(choice) != 1 {
			continue
		}
		if alwaysOptions.Has(choice[0]) || (s.filename != "" && loadedOptions.Has(choice[0])) {
			return choice[0], nil
		}
	}
}

func (s *session) displayMenu() {
	fmt.Fprintf(s.out, "\n%c. Load file\n", optionLoad)
	if s.filename != "" {
		fmt.Fprintf(s.out, "%c. Print Maze\n%c. Execute DFS\n%c. Execute BFS\n%c. Reload file\n",
			optionPrint, optionDFS, optionBFS, optionReload)
		fmt.Fprintf(s.out, "Currently loaded file: %s\n", s.filename)
	}
	fmt.Fprintf(s.out, "%c. Quit\n\n", optionQuit)
	fmt.Fprint(s.out, "Please enter your option: ")
}

// load replaces the maze; on failure the file is forgotten.
func (s *session) load(name, failure string) {
	if !s.maze.LoadMaze(name) {
		fmt.Fprintf(s.out, "%s: %s\n", failure, name)
		s.filename = ""
		return
	}
	s.filename = name
}

// search asks for a start position and prints the result of find.
func (s *session) search(find func(row, column int) int) error {
	if !s.maze.MazeLoaded() {
		fmt.Fprintln(s.out, grid.NotLoadedNotice)
		return nil
	}
	rows, columns := s.maze.RowCount(), s.maze.ColumnCount()
	for {
		fmt.Fprintf(s.out, "Please enter the start position as column,row (0-%d,0-%d): ", columns-1, rows-1)
		line, err := s.readLine()
		if err != nil {
			return err
		}
		row, column, err := ParseCoordinate(line, rows, columns)
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		fmt.Fprintln(s.out, describe(find(row, column)))
		return nil
	}
}

// readLine returns the next trimmed input line, or io.EOF.
func (s *session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
