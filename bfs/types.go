// Package bfs provides tunable options and error definitions
// for breadth-first search over a maze.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("bfs: position out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell joins the frontier.
	// Receives the cell and its distance (steps) from the start.
	OnEnqueue func(p maze.Position, depth int)

	// OnVisit is called when a cell is expanded. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(p maze.Position, depth int) error

	// MaxExpansions, if > 0, ends the search without a path once this many
	// cells have been expanded. 0 means no limit.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no-op hooks
// and no expansion limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(maze.Position, int) {},
		OnVisit:   func(maze.Position, int) error { return nil },
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

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p maze.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on every expansion; returning an
// error from it stops the search.
func WithOnVisit(fn func(p maze.Position, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxExpansions caps the number of expanded cells.
//
//	n > 0:  stop after n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result holds the outcome of a search:
//   - Path: start→goal cells, nil if the goal was not reached.
//   - Visited: cells in expansion order.
//   - Truncated: true if MaxExpansions stopped the search early.
type Result struct {
	Path      maze.Path
	Visited   []maze.Position
	Truncated bool
}

// Found reports whether a path was produced.
func (r *Result) Found() bool {
	return r != nil && len(r.Path) > 0
}
