// Command mazefinder finds the fewest moves from a start cell to the nearest
// exit of a text maze.
package main

import (
	"os"

	"github.com/katalvlaran/mazefinder/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
