package solver_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/solver"
)

func ExampleSolve() {
	g, _ := maze.Load(strings.NewReader("S, ,#\n , ,#\n#, ,E\n"))
	out, err := solver.Solve(g, solver.AStar)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.Algorithm, out.Found, out.Path)
	// Output:
	// A* true [(0,0) (0,1) (1,1) (2,1) (2,2)]
}

func ExampleSolve_missingExit() {
	g, _ := maze.Load(strings.NewReader("S, , \n"))
	_, err := solver.Solve(g, solver.BFS)
	fmt.Println(errors.Is(err, solver.ErrMissingMarker))
	// Output:
	// true
}

func ExampleOutcome_Frames() {
	g, _ := maze.Load(strings.NewReader("S, ,E\n"))
	out, _ := solver.Solve(g, solver.BFS)
	for f := range out.Frames() {
		fmt.Println(f)
	}
	// Output:
	// [(0,0)]
	// [(0,0) (0,1)]
	// [(0,0) (0,1) (0,2)]
}
