package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPrintCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print [FILE]",
		Short: "Render a maze ('.' clear, 'B' blocked, 'X' exit)",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := a.mazeFile(args)
			if err != nil {
				return err
			}
			m := a.newMaze(cmd)
			if !m.LoadMaze(file) {
				return fmt.Errorf("cannot load maze %q", file)
			}
			m.PrintMaze()
			return nil
		},
	}
}
