// Package lvmaze is a small toolkit for loading grid mazes and solving them
// with interchangeable search strategies.
//
// 🚀 What is in the box?
//
//	• maze/     Grid, CellKind, Position, Path; CSV loading; movement rules
//	• bfs/      breadth-first search (shortest path)
//	• dfs/      depth-first search (any path)
//	• astar/    A* with a Manhattan heuristic (shortest path)
//	• genetic/  placeholder strategy, currently an alias of bfs
//	• solver/   one entry point: validate markers, run an Algorithm, get an Outcome
//	• render/   text frames with '*' path markers and PNG images
//	• config/   MAZE_* environment and .env settings for the CLI
//
// Quick example:
//
//	S, ,#        **#
//	 , ,#   →     *#
//	#, ,E        #**
//
//	g, _ := maze.LoadFile("maze.csv")
//	out, _ := solver.Solve(g, solver.AStar)
//	fmt.Print(render.Text(g, out.Path))
//
// The mazesolve command in cmd/mazesolve wires everything together.
package lvmaze
