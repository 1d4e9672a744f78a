package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// frame is one stack entry.
type frame struct {
	pos  maze.Position
	path maze.Path
}

// dfsWalker encapsulates state during one search.
type dfsWalker struct {
	grid    *maze.Grid
	goal    maze.Position
	opts    Options
	stack   []frame
	visited []bool
	steps   []maze.Position
	res     *Result
}

// Search performs depth-first search on g from start towards goal.
// A missing path is reported as Result.Path == nil, not as an error.
func Search(g *maze.Grid, start, goal maze.Position, opts ...Option) (*Result, error) {
	// 1. Validate input grid
	if g == nil {
		return nil, ErrGridNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Validate endpoints
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: start %v goal %v", ErrOutOfBounds, start, goal)
	}

	n := g.Rows() * g.Cols()
	w := &dfsWalker{
		grid:    g,
		goal:    goal,
		opts:    dopts,
		stack:   make([]frame, 0, n),
		visited: make([]bool, n),
		steps:   make([]maze.Position, 0, len(maze.Directions)),
		res:     &Result{Visited: make([]maze.Position, 0, n)},
	}

	// 4. Seed and run
	w.push(start, maze.Path{start})
	if err := w.run(); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// run pops until the goal is reached or the stack is empty.
func (w *dfsWalker) run() error {
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Pop
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// 3. Goal check comes before the visited check
		if top.pos == w.goal {
			w.res.Path = top.path
			return nil
		}

		idx := w.index(top.pos)
		if w.visited[idx] {
			continue
		}
		if w.opts.MaxExpansions > 0 && len(w.res.Visited) >= w.opts.MaxExpansions {
			w.res.Truncated = true
			return nil
		}

		// 4. Mark and hook
		w.visited[idx] = true
		w.res.Visited = append(w.res.Visited, top.pos)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.pos, len(top.path)-1); err != nil {
				return fmt.Errorf("dfs: OnVisit error at %v: %w", top.pos, err)
			}
		}

		// 5. Push unvisited passable neighbors in fixed order
		w.steps = w.grid.Steps(top.pos, w.goal, w.steps[:0])
		for _, nbr := range w.steps {
			if w.visited[w.index(nbr)] {
				continue
			}
			w.push(nbr, extend(top.path, nbr))
		}
	}

	return nil
}

func (w *dfsWalker) push(p maze.Position, path maze.Path) {
	w.stack = append(w.stack, frame{pos: p, path: path})
	w.res.Pushes++
	if w.opts.OnPush != nil {
		w.opts.OnPush(p, len(path)-1)
	}
}

func (w *dfsWalker) index(p maze.Position) int {
	return p.Row*w.grid.Cols() + p.Col
}

// extend returns a fresh copy of path with p appended.
func extend(path maze.Path, p maze.Position) maze.Path {
	out := make(maze.Path, len(path)+1)
	copy(out, path)
	out[len(path)] = p

	return out
}
