// Package cli implements the mazefinder command line: one-shot print and
// solve commands plus an interactive menu.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mazefinder"
	"github.com/katalvlaran/mazefinder/internal/config"
	"github.com/katalvlaran/mazefinder/internal/logging"
)

// Exit codes returned by Execute.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0
	// ExitFailure indicates a runtime failure (unreadable maze, write error).
	ExitFailure = 1
	// ExitUsage indicates bad flags, arguments or configuration.
	ExitUsage = 2
)

// errUsage marks errors that map to ExitUsage.
var errUsage = errors.New("usage")

// app carries the state shared by every command of one invocation.
type app struct {
	v        *viper.Viper
	envFiles []string // passed to config.Load; empty means ".env"
	cfg      config.Config
	log      *logrus.Logger
}

// Execute runs the command line with os.Args and returns the exit code.
func Execute() int {
	return run(NewRootCommand(), os.Args[1:])
}

// NewRootCommand builds the mazefinder command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{v: viper.New()})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "mazefinder",
		Short: "Find the fewest moves from a start cell to the nearest maze exit",
		Long: `mazefinder loads a maze file ("<columns>,<rows>" header, then one line of
0 (clear), 1 (blocked) or 2 (exit) cells per row) and reports the fewest
four-directional moves to an exit using breadth-first or depth-first search.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	pf := root.PersistentFlags()
	pf.String(config.KeyLogLevel, "info", "log level: debug, info, warn, error")
	pf.String(config.KeyLogFormat, logging.FormatText, "log format: text or json")
	pf.String(config.KeyFile, "", "maze file used when no FILE argument is given")
	for _, key := range []string{config.KeyLogLevel, config.KeyLogFormat, config.KeyFile} {
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(
		newPrintCommand(a),
		newSolveCommand(a),
		newInteractiveCommand(a),
	)
	return root
}

// init resolves configuration and builds the logger before any command runs.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.envFiles...)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	a.cfg, a.log = cfg, log
	return nil
}

// newMaze returns a facade writing to the command's output.
func (a *app) newMaze(cmd *cobra.Command) *mazefinder.Maze {
	return mazefinder.New(
		mazefinder.WithOutput(cmd.OutOrStdout()),
		mazefinder.WithLogger(a.log),
	)
}

// mazeFile returns the FILE argument, falling back to the configured file.
func (a *app) mazeFile(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if a.cfg.File != "" {
		return a.cfg.File, nil
	}
	return "", fmt.Errorf("%w: no maze file given (argument, --file or MAZEFINDER_FILE)", errUsage)
}

// usageArgs tags argument validation failures as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}

// run executes root with args and maps the outcome to an exit code.
func run(root *cobra.Command, args []string) int {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	if errors.Is(err, errUsage) {
		return ExitUsage
	}
	return ExitFailure
}
