// Package astar implements A* search on a maze.Grid.
//
// Notes on implementation choices:
//
//   - The open set is a membership table plus a min-heap ordered by
//     (f, admission sequence). Ties on f go to the cell admitted earliest,
//     so runs are reproducible.
//   - Re-admitting a cell with a better g pushes a fresh heap entry; the old
//     one is recognised as stale on pop (cell not in the open set, or its f
//     no longer matches) and skipped.
//   - Only passable cells are relaxed: open cells and the goal itself.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmaze/maze"
)

// unscored is the +∞ default for g and f scores.
const unscored = math.MaxInt

// Search finds a path from start to goal on g using A*.
//
// Returns:
//
//   - a Result whose Path is the reconstructed start→goal path, or nil if
//     the open set emptied first.
//   - an error only for invalid input, cancellation or a hook error.
//
// Complexity:
//
//   - Time:  O(N log N)
//   - Space: O(N)
func Search(g *maze.Grid, start, goal maze.Position, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid and endpoints
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start) || !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: start %v goal %v", ErrOutOfBounds, start, goal)
	}

	// 3) Prepare per-call state; nothing survives the call.
	n := g.Rows() * g.Cols()
	r := &runner{
		grid:     g,
		goal:     goal,
		cfg:      cfg,
		gScore:   make([]int, n),
		fScore:   make([]int, n),
		cameFrom: make([]int, n),
		inOpen:   make([]bool, n),
		pq:       make(nodePQ, 0, n),
		steps:    make([]maze.Position, 0, len(maze.Directions)),
		res:      &Result{Visited: make([]maze.Position, 0, n)},
	}
	r.init(start)

	// 4) Main loop
	if err := r.process(); err != nil {
		return r.res, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid     *maze.Grid
	goal     maze.Position
	cfg      Options
	gScore   []int  // best known steps from start, unscored if unknown
	fScore   []int  // gScore + heuristic, unscored if unknown
	cameFrom []int  // predecessor index, -1 if none
	inOpen   []bool // open-set membership
	pq       nodePQ
	seq      int // next admission number
	steps    []maze.Position
	res      *Result
}

// init resets every score to +∞ and admits the start cell.
func (r *runner) init(start maze.Position) {
	for i := range r.gScore {
		r.gScore[i] = unscored
		r.fScore[i] = unscored
		r.cameFrom[i] = -1
	}
	s := r.index(start)
	r.gScore[s] = 0
	heap.Init(&r.pq)
	r.admit(s, r.cfg.Heuristic(start, r.goal))
}

// admit records f for cell i and (re)places it in the open set.
func (r *runner) admit(i, f int) {
	r.fScore[i] = f
	r.inOpen[i] = true
	heap.Push(&r.pq, &nodeItem{idx: i, f: f, seq: r.seq})
	r.seq++
}

// process repeatedly selects the open cell with the lowest f.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.cfg.Ctx.Done():
			return r.cfg.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx
		// stale entry: already removed, or superseded by a better f
		if !r.inOpen[u] || item.f != r.fScore[u] {
			continue
		}

		cur := r.position(u)
		if cur == r.goal {
			r.res.Path = r.reconstruct(u)
			return nil
		}
		if r.cfg.MaxExpansions > 0 && len(r.res.Visited) >= r.cfg.MaxExpansions {
			r.res.Truncated = true
			return nil
		}

		r.inOpen[u] = false
		r.res.Visited = append(r.res.Visited, cur)
		if r.cfg.OnVisit != nil {
			if err := r.cfg.OnVisit(cur, r.gScore[u]); err != nil {
				return fmt.Errorf("astar: OnVisit error at %v: %w", cur, err)
			}
		}
		r.relax(u, cur)
	}

	return nil
}

// relax tries to improve every passable neighbor of cur through it.
func (r *runner) relax(u int, cur maze.Position) {
	tentative := r.gScore[u] + 1
	r.steps = r.grid.Steps(cur, r.goal, r.steps[:0])
	for _, nbr := range r.steps {
		v := r.index(nbr)
		if tentative >= r.gScore[v] {
			continue
		}
		r.cameFrom[v] = u
		r.gScore[v] = tentative
		r.admit(v, tentative+r.cfg.Heuristic(nbr, r.goal))
	}
}

// reconstruct follows back-pointers from goal index i and reverses them
// into start→goal order.
func (r *runner) reconstruct(i int) maze.Path {
	var path maze.Path
	for ; i >= 0; i = r.cameFrom[i] {
		path = append(path, r.position(i))
	}
	for a, b := 0, len(path)-1; a < b; a, b = a+1, b-1 {
		path[a], path[b] = path[b], path[a]
	}

	return path
}

func (r *runner) index(p maze.Position) int { return p.Row*r.grid.Cols() + p.Col }

func (r *runner) position(i int) maze.Position {
	return maze.Position{Row: i / r.grid.Cols(), Col: i % r.grid.Cols()}
}

// nodeItem is one heap entry: a cell index, its f at push time and the
// admission sequence used for tie-breaking.
type nodeItem struct {
	idx int
	f   int
	seq int
}

// nodePQ is a min-heap of *nodeItem ordered by (f, seq).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f, then by earliest admission.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
