package render_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/render"
	"github.com/katalvlaran/lvmaze/solver"
)

func ExampleText() {
	g, _ := maze.Load(strings.NewReader("S, ,#\n , ,#\n#, ,E\n"))
	out, _ := solver.Solve(g, solver.BFS)
	fmt.Print(render.Text(g, out.Path))
	// Output:
	// **#
	//  *#
	// #**
}
