package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazefinder"
)

// Algorithm names accepted by --algorithm.
const (
	algorithmBFS  = "bfs"
	algorithmDFS  = "dfs"
	algorithmBoth = "both"
)

func newSolveCommand(a *app) *cobra.Command {
	var at, algorithm string

	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Report the fewest moves from a start cell to the nearest exit",
		Example: `  mazefinder solve maze.txt --at 0,0
  mazefinder solve maze.txt --at 3,1 --algorithm dfs`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := a.mazeFile(args)
			if err != nil {
				return err
			}
			algorithms, err := parseAlgorithm(algorithm)
			if err != nil {
				return err
			}

			m := a.newMaze(cmd)
			if !m.LoadMaze(file) {
				return fmt.Errorf("cannot load maze %q", file)
			}
			row, column, err := ParseCoordinate(at, m.RowCount(), m.ColumnCount())
			if err != nil {
				return fmt.Errorf("%w: %v", errUsage, err)
			}

			for _, alg := range algorithms {
				d := search(m, alg, row, column)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", strings.ToUpper(alg), describe(d))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "0,0", "start cell as column,row")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", algorithmBoth, "search algorithm: bfs, dfs or both")

	return cmd
}

// parseAlgorithm expands the --algorithm value into the searches to run.
func parseAlgorithm(s string) ([]string, error) {
	switch strings.ToLower(s) {
	case algorithmBFS:
		return []string{algorithmBFS}, nil
	case algorithmDFS:
		return []string{algorithmDFS}, nil
	case algorithmBoth:
		return []string{algorithmBFS, algorithmDFS}, nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", errUsage, s)
	}
}

func search(m *mazefinder.Maze, algorithm string, row, column int) int {
	if algorithm == algorithmDFS {
		return m.MinimumSpacesDFS(row, column)
	}
	return m.MinimumSpacesBFS(row, column)
}
