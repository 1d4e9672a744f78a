package render

import (
	"strings"

	"github.com/katalvlaran/lvmaze/maze"
)

// PathSymbol marks a path cell in Text output.
const PathSymbol = "*"

// Text renders g with every cell of path shown as PathSymbol.
// A nil grid renders as "".
func Text(g *maze.Grid, path maze.Path) string {
	if g == nil {
		return ""
	}
	onPath := pathSet(path)

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := maze.Position{Row: r, Col: c}
			if _, ok := onPath[p]; ok {
				b.WriteString(PathSymbol)
				continue
			}
			b.WriteString(g.Symbol(p))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func pathSet(path maze.Path) map[maze.Position]struct{} {
	set := make(map[maze.Position]struct{}, len(path))
	for _, p := range path {
		set[p] = struct{}{}
	}

	return set
}
