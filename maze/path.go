package maze

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidPath is returned by Path.Validate.
var ErrInvalidPath = errors.New("maze: invalid path")

// Path is an ordered sequence of positions from entry to exit.
// A nil or empty Path means no path was found.
type Path []Position

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p) }

// Empty reports whether p carries no cells.
func (p Path) Empty() bool { return len(p) == 0 }

// Start returns the first cell; ok is false for an empty path.
func (p Path) Start() (Position, bool) {
	if len(p) == 0 {
		return Position{}, false
	}

	return p[0], true
}

// End returns the last cell; ok is false for an empty path.
func (p Path) End() (Position, bool) {
	if len(p) == 0 {
		return Position{}, false
	}

	return p[len(p)-1], true
}

// Contains reports whether pos lies on the path.
// Complexity: O(len(p)).
func (p Path) Contains(pos Position) bool {
	for _, q := range p {
		if q == pos {
			return true
		}
	}

	return false
}

// Clone returns an independent copy of p (nil stays nil).
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Validate checks that p starts on the grid entry, ends on the exit, stays in
// bounds, moves by one cardinal step at a time and never repeats a cell.
func (p Path) Validate(g *Grid) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if entry, ok := g.Entry(); !ok || p[0] != entry {
		return fmt.Errorf("%w: starts at %v, not on the entry", ErrInvalidPath, p[0])
	}
	if exit, ok := g.Exit(); !ok || p[len(p)-1] != exit {
		return fmt.Errorf("%w: ends at %v, not on the exit", ErrInvalidPath, p[len(p)-1])
	}
	seen := make(map[Position]struct{}, len(p))
	for i, q := range p {
		if !g.InBounds(q) {
			return fmt.Errorf("%w: %v out of bounds", ErrInvalidPath, q)
		}
		if _, dup := seen[q]; dup {
			return fmt.Errorf("%w: %v repeated", ErrInvalidPath, q)
		}
		seen[q] = struct{}{}
		if i > 0 && !adjacent(p[i-1], q) {
			return fmt.Errorf("%w: %v→%v is not a unit step", ErrInvalidPath, p[i-1], q)
		}
	}

	return nil
}

// Prefixes yields p[:1], p[:2], …, p as independent copies. The sequence is
// finite and can be ranged over any number of times.
func (p Path) Prefixes() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		for i := 1; i <= len(p); i++ {
			if !yield(p[:i].Clone()) {
				return
			}
		}
	}
}

func adjacent(a, b Position) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr+dc == 1
}
