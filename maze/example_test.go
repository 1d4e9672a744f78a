package maze_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/maze"
)

// ExampleLoad reads the 3×3 comma-separated maze and reports its markers
// and the walkable neighbors of the entry.
func ExampleLoad() {
	g, err := maze.Load(strings.NewReader("S, ,#\n , ,#\n#, ,E\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	entry, _ := g.Entry()
	exit, _ := g.Exit()
	fmt.Println("size:", g.Rows(), "x", g.Cols())
	fmt.Println("entry:", entry, "exit:", exit)
	fmt.Println("steps:", g.Steps(entry, exit, nil))
	// Output:
	// size: 3 x 3
	// entry: (0,0) exit: (2,2)
	// steps: [(0,1) (1,0)]
}
