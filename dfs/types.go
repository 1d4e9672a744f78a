package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

var (
	// ErrGridNil is returned when a nil *maze.Grid is passed to Search.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrOutOfBounds indicates that start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("dfs: position out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of Search.
type Option func(*Options)

// Options holds configurable parameters for a depth-first search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a cell is expanded (first pop).
	// Returning an error aborts the search with that error.
	OnVisit func(p maze.Position, depth int) error

	// OnPush, if non-nil, is invoked for every push, duplicates included.
	OnPush func(p maze.Position, depth int)

	// MaxExpansions, if > 0, stops the search without a path once that many
	// cells have been expanded.
	MaxExpansions int

	err error
}

// DefaultOptions returns Options with a background context, no hooks
// and no expansion limit.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the expansion hook.
func WithOnVisit(fn func(p maze.Position, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnPush installs fn as the push hook.
func WithOnPush(fn func(p maze.Position, depth int)) Option {
	return func(o *Options) {
		o.OnPush = fn
	}
}

// WithMaxExpansions limits the number of expanded cells; 0 means no limit.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result captures the outcome of a depth-first search.
type Result struct {
	// Path lists start→goal cells, or is nil when the goal was not reached.
	Path maze.Path

	// Visited records cells in the order they were expanded.
	Visited []maze.Position

	// Pushes counts every push onto the stack, including duplicates.
	Pushes int

	// Truncated is true if MaxExpansions ended the search.
	Truncated bool
}

// Found reports whether a path was produced.
func (r *Result) Found() bool {
	return r != nil && len(r.Path) > 0
}
