package genetic

import (
	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/maze"
)

// Option configures Search. It is the breadth-first option type.
type Option = bfs.Option

// Result is the breadth-first result type.
type Result = bfs.Result

// Option constructors, shared with bfs.
var (
	WithContext       = bfs.WithContext
	WithOnVisit       = bfs.WithOnVisit
	WithOnEnqueue     = bfs.WithOnEnqueue
	WithMaxExpansions = bfs.WithMaxExpansions
)

// Search returns exactly what bfs.Search returns for the same arguments.
func Search(g *maze.Grid, start, goal maze.Position, opts ...Option) (*Result, error) {
	return bfs.Search(g, start, goal, opts...)
}
