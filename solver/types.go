package solver

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/lvmaze/maze"
)

// Sentinel errors returned by Solve and ParseAlgorithm.
var (
	// ErrGridNil is returned when Solve receives a nil grid.
	ErrGridNil = errors.New("solver: grid is nil")

	// ErrMissingMarker is wrapped by *MissingMarkerError.
	ErrMissingMarker = errors.New("solver: maze must contain an entry (S) and exit (E) point")

	// ErrUnknownAlgorithm is returned for an unrecognised Algorithm.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")
)

// MissingMarkerError reports which markers a grid lacks.
type MissingMarkerError struct {
	Entry bool // true if the entry (S) is missing
	Exit  bool // true if the exit (E) is missing
}

func (e *MissingMarkerError) Error() string {
	var missing []string
	if e.Entry {
		missing = append(missing, "entry (S)")
	}
	if e.Exit {
		missing = append(missing, "exit (E)")
	}

	return fmt.Sprintf("%v: missing %s", ErrMissingMarker, strings.Join(missing, " and "))
}

// Unwrap returns ErrMissingMarker.
func (e *MissingMarkerError) Unwrap() error { return ErrMissingMarker }

// Algorithm selects a search strategy.
type Algorithm int

const (
	// BFS is breadth-first search (shortest path).
	BFS Algorithm = iota
	// DFS is depth-first search (any path).
	DFS
	// AStar is heuristic best-first search (shortest path).
	AStar
	// Genetic is the placeholder mode; it runs BFS.
	Genetic
)

// Algorithms lists every algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, AStar, Genetic}
}

func (a Algorithm) valid() bool { return a >= BFS && a <= Genetic }

func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case AStar:
		return "A*"
	case Genetic:
		return "Genetic"
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepted: bfs, dfs, a*/astar/heuristic, genetic/placeholder.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first":
		return BFS, nil
	case "dfs", "depth-first":
		return DFS, nil
	case "a*", "astar", "a-star", "heuristic":
		return AStar, nil
	case "genetic", "placeholder":
		return Genetic, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Option configures Solve.
type Option func(*Options)

// Options are forwarded to whichever search runs.
type Options struct {
	// Ctx allows cancellation; default context.Background().
	Ctx context.Context

	// OnVisit is called once per expanded cell with its distance from the
	// entry. Returning an error aborts the solve.
	OnVisit func(p maze.Position, depth int) error

	// MaxExpansions, if > 0, gives up (no path) after that many expansions.
	MaxExpansions int
}

// DefaultOptions returns a background context, no hook and no limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context passed to the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a per-expansion hook.
func WithOnVisit(fn func(p maze.Position, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxExpansions caps the expansions; negative values are rejected by
// the search with its ErrOptionViolation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// Outcome is the result of one solve request.
type Outcome struct {
	Algorithm Algorithm
	Entry     maze.Position
	Exit      maze.Position
	Path      maze.Path       // entry→exit, nil when Found is false
	Found     bool            // false means no path exists
	Visited   []maze.Position // expansion order reported by the search
	Expanded  int             // len(Visited)
	Truncated bool            // MaxExpansions ended the search
}

// Frames yields the growing prefixes of Path, one per step, for replaying
// the solution. It yields nothing when no path was found.
func (o *Outcome) Frames() iter.Seq[maze.Path] {
	return o.Path.Prefixes()
}
