package astar_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/maze"
)

// ExampleSearch walks the 3×3 maze with the Manhattan heuristic and prints
// the g-score of each expanded cell.
func ExampleSearch() {
	g, _ := maze.Load(strings.NewReader("S, ,#\n , ,#\n#, ,E\n"))
	entry, _ := g.Entry()
	exit, _ := g.Exit()

	res, err := astar.Search(g, entry, exit, astar.WithOnVisit(func(p maze.Position, g int) error {
		fmt.Printf("expand %v g=%d\n", p, g)
		return nil
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	// Output:
	// expand (0,0) g=0
	// expand (0,1) g=1
	// expand (1,0) g=1
	// expand (1,1) g=2
	// expand (2,1) g=3
	// [(0,0) (0,1) (1,1) (2,1) (2,2)]
}
