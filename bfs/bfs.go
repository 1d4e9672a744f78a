package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// queueItem pairs a cell with the path that reached it.
type queueItem struct {
	pos  maze.Position
	path maze.Path
}

// walker encapsulates mutable BFS state for one call.
type walker struct {
	grid    *maze.Grid
	goal    maze.Position
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited []bool
	steps   []maze.Position
	res     *Result
}

// Search runs breadth-first search on g from start to goal.
// A missing path is not an error: Result.Path is nil.
// Returns ErrGridNil, ErrOutOfBounds or ErrOptionViolation for invalid input,
// the context error on cancellation, or a wrapped OnVisit error.
func Search(g *maze.Grid, start, goal maze.Position, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: start %v goal %v", ErrOutOfBounds, start, goal)
	}

	n := g.Rows() * g.Cols()
	w := &walker{
		grid:    g,
		goal:    goal,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		steps:   make([]maze.Position, 0, len(maze.Directions)),
		res:     &Result{Visited: make([]maze.Position, 0, n)},
	}

	// the start cell is seeded but never marked visited
	w.queue = append(w.queue, queueItem{pos: start, path: maze.Path{start}})
	w.opts.OnEnqueue(start, 0)

	return w.res, w.loop()
}

// loop processes the queue until the goal is dequeued, the queue empties,
// or an error or cancellation occurs.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		if item.pos == w.goal {
			w.res.Path = item.path
			return nil
		}
		if w.opts.MaxExpansions > 0 && len(w.res.Visited) >= w.opts.MaxExpansions {
			w.res.Truncated = true
			return nil
		}
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the cell in Visited and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Visited = append(w.res.Visited, item.pos)
	if err := w.opts.OnVisit(item.pos, len(item.path)-1); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
	}

	return nil
}

// enqueueNeighbors marks and enqueues every passable, unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	w.steps = w.grid.Steps(item.pos, w.goal, w.steps[:0])
	for _, nbr := range w.steps {
		idx := nbr.Row*w.grid.Cols() + nbr.Col
		if w.visited[idx] {
			continue
		}
		w.visited[idx] = true
		w.opts.OnEnqueue(nbr, len(item.path))
		w.queue = append(w.queue, queueItem{pos: nbr, path: extend(item.path, nbr)})
	}
}

// extend returns a fresh copy of path with p appended.
func extend(path maze.Path, p maze.Position) maze.Path {
	out := make(maze.Path, len(path)+1)
	copy(out, path)
	out[len(path)] = p

	return out
}
