package solver

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/genetic"
	"github.com/katalvlaran/lvmaze/maze"
)

// Solve runs algo on g from its entry to its exit.
//
// Validation (in order):
//  1. g must be non-nil (ErrGridNil).
//  2. algo must be known (ErrUnknownAlgorithm).
//  3. g must contain both markers (*MissingMarkerError).
//
// A search that exhausts its frontier returns an Outcome with Found == false
// and a nil error. Errors from the search itself (cancellation, hook errors,
// bad options) are returned as-is.
func Solve(g *maze.Grid, algo Algorithm, opts ...Option) (*Outcome, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !algo.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}

	entry, hasEntry := g.Entry()
	exit, hasExit := g.Exit()
	if !hasEntry || !hasExit {
		return nil, &MissingMarkerError{Entry: !hasEntry, Exit: !hasExit}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	out := &Outcome{Algorithm: algo, Entry: entry, Exit: exit}
	var err error
	switch algo {
	case BFS:
		var res *bfs.Result
		res, err = bfs.Search(g, entry, exit, bfsOptions(o)...)
		if res != nil {
			out.Path, out.Visited, out.Truncated = res.Path, res.Visited, res.Truncated
		}
	case DFS:
		var res *dfs.Result
		res, err = dfs.Search(g, entry, exit, dfsOptions(o)...)
		if res != nil {
			out.Path, out.Visited, out.Truncated = res.Path, res.Visited, res.Truncated
		}
	case AStar:
		var res *astar.Result
		res, err = astar.Search(g, entry, exit, astarOptions(o)...)
		if res != nil {
			out.Path, out.Visited, out.Truncated = res.Path, res.Visited, res.Truncated
		}
	case Genetic:
		var res *genetic.Result
		res, err = genetic.Search(g, entry, exit, bfsOptions(o)...)
		if res != nil {
			out.Path, out.Visited, out.Truncated = res.Path, res.Visited, res.Truncated
		}
	}
	if err != nil {
		return nil, err
	}
	out.Found = len(out.Path) > 0
	out.Expanded = len(out.Visited)

	return out, nil
}

func bfsOptions(o Options) []bfs.Option {
	opts := []bfs.Option{bfs.WithContext(o.Ctx), bfs.WithMaxExpansions(o.MaxExpansions)}
	if o.OnVisit != nil {
		opts = append(opts, bfs.WithOnVisit(o.OnVisit))
	}

	return opts
}

func dfsOptions(o Options) []dfs.Option {
	return []dfs.Option{dfs.WithContext(o.Ctx), dfs.WithMaxExpansions(o.MaxExpansions), dfs.WithOnVisit(o.OnVisit)}
}

func astarOptions(o Options) []astar.Option {
	return []astar.Option{astar.WithContext(o.Ctx), astar.WithMaxExpansions(o.MaxExpansions), astar.WithOnVisit(o.OnVisit)}
}
