// Package mazefinder loads text mazes and reports the fewest moves from a
// start cell to the nearest exit.
//
// What is mazefinder?
//
//	A small solver built from three packages plus a facade:
//		• grid: cell kinds, the maze file parser and bounds-checked access
//		• bfs:  level-order nearest-exit search
//		• dfs:  exhaustive backtracking nearest-exit search
//		• Maze (this package): the load / print / search entry points used
//		  by the command line front end in cmd/mazefinder
//
// Maze file:
//
//	3,3        <columns>,<rows>
//	0 0 0      0 = clear
//	0 1 0      1 = blocked
//	0 0 2      2 = exit
//
// Moves are four-directional. Searches return grid.Unreachable (-1) when no
// exit can be reached or the start lies outside the maze.
//
// Quick example:
//
//	m := mazefinder.New()
//	if !m.LoadMaze("maze.txt") {
//		// inspect the logs for the reason
//	}
//	fmt.Println(m.MinimumSpacesBFS(0, 0)) // 4
//
//	go install github.com/katalvlaran/mazefinder/cmd/mazefinder@latest
package mazefinder
