// Package astar defines core types and configuration options for A* search
// over a maze.Grid.
//
// A* expands the frontier cell with the lowest f = g + h, where g is the
// number of steps from the start and h is a heuristic estimate of the steps
// left to the goal. With an admissible heuristic (never overestimating) the
// first time the goal is selected its path is a shortest one.
//
// Complexity (N = rows×cols):
//
//	– Time:  O(N log N)
//	   • Each (re)admission pushes one heap entry: O(log N).
//	   • Stale entries are skipped on pop ("lazy decrease-key").
//	– Space: O(N) for the g/f scores, back-pointers and heap.
//
// Options:
//
//	– WithHeuristic(fn):    replace the Manhattan distance.
//	– WithContext(ctx):     cancellation, checked once per selection.
//	– WithOnVisit(fn):      hook per expanded cell; an error aborts.
//	– WithMaxExpansions(n): stop without a path after n expansions.
//
// Errors (sentinel):
//
//	– ErrGridNil          if the grid pointer is nil.
//	– ErrOutOfBounds      if start or goal is outside the grid.
//	– ErrOptionViolation  if MaxExpansions < 0.
package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// Sentinel errors returned by Search.
var (
	// ErrGridNil indicates that a nil *maze.Grid was passed to Search.
	ErrGridNil = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates that start or goal is outside the grid.
	ErrOutOfBounds = errors.New("astar: position out of bounds")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining steps from a to b.
type Heuristic func(a, b maze.Position) int

// Manhattan returns |Δrow| + |Δcol|. It is admissible and consistent for
// 4-directional unit-cost moves.
func Manhattan(a, b maze.Position) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Options configures the behavior of Search.
//
// Heuristic     – remaining-cost estimate; Manhattan by default.
// Ctx           – cancellation; context.Background() by default.
// OnVisit       – called once per expanded cell with its g-score.
// MaxExpansions – if > 0, stop without a path after that many expansions.
type Options struct {
	Heuristic     Heuristic
	Ctx           context.Context
	OnVisit       func(p maze.Position, g int) error
	MaxExpansions int

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with the Manhattan heuristic, a background
// context, no hook and no expansion limit.
func DefaultOptions() Options {
	return Options{
		Heuristic: Manhattan,
		Ctx:       context.Background(),
	}
}

// WithHeuristic sets the heuristic. A nil fn keeps Manhattan.
// Non-admissible heuristics void the shortest-path guarantee.
func WithHeuristic(fn Heuristic) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a hook called for each expanded cell.
func WithOnVisit(fn func(p maze.Position, g int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxExpansions caps the number of expanded cells; 0 means no limit and
// negative values cause ErrOptionViolation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result holds the outcome of an A* search.
type Result struct {
	Path      maze.Path       // start→goal, nil when unreachable
	Visited   []maze.Position // cells in expansion order
	Truncated bool            // MaxExpansions ended the search
}

// Found reports whether a path was produced.
func (r *Result) Found() bool {
	return r != nil && len(r.Path) > 0
}
