package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and loading.
var (
	// ErrMalformedGrid is wrapped by every parse or load failure.
	ErrMalformedGrid = errors.New("maze: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
)

// MalformedGridError reports where a table stopped being rectangular.
// Row is -1 when the failure is not tied to a single row.
type MalformedGridError struct {
	Row  int   // offending row, 0-indexed
	Want int   // expected number of columns
	Got  int   // columns found in Row
	Err  error // ErrEmptyGrid, ErrNonRectangular or a read error
}

func (e *MalformedGridError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%v: %v", ErrMalformedGrid, e.Err)
	}

	return fmt.Sprintf("%v: row %d has %d cells, want %d: %v", ErrMalformedGrid, e.Row, e.Got, e.Want, e.Err)
}

// Unwrap exposes both the umbrella sentinel and the specific cause.
func (e *MalformedGridError) Unwrap() []error {
	return []error{ErrMalformedGrid, e.Err}
}

// CellKind is the kind of a single grid cell.
type CellKind uint8

const (
	// Wall is anything that is not open space or a marker.
	Wall CellKind = iota
	// Open is traversable space (' ').
	Open
	// Entry is the start marker ('S').
	Entry
	// Exit is the goal marker ('E').
	Exit
)

// Cell symbols recognized by Parse.
const (
	SymbolOpen  = " "
	SymbolWall  = "#"
	SymbolEntry = "S"
	SymbolExit  = "E"
)

// KindOf classifies a raw cell symbol. Anything unrecognized is a Wall.
func KindOf(symbol string) CellKind {
	switch symbol {
	case SymbolOpen:
		return Open
	case SymbolEntry:
		return Entry
	case SymbolExit:
		return Exit
	default:
		return Wall
	}
}

// Symbol returns the canonical symbol for k.
func (k CellKind) Symbol() string {
	switch k {
	case Open:
		return SymbolOpen
	case Entry:
		return SymbolEntry
	case Exit:
		return SymbolExit
	default:
		return SymbolWall
	}
}

func (k CellKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Entry:
		return "entry"
	case Exit:
		return "exit"
	}

	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

// Position is a 0-indexed (row, col) cell coordinate.
type Position struct {
	Row, Col int
}

// Add returns p moved one step in direction d.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is a unit cardinal step.
type Direction struct {
	DRow, DCol int
}

// Cardinal steps.
var (
	East  = Direction{DRow: 0, DCol: 1}
	South = Direction{DRow: 1, DCol: 0}
	West  = Direction{DRow: 0, DCol: -1}
	North = Direction{DRow: -1, DCol: 0}
)

// Directions lists the movement order shared by every search.
// The order decides which of several equally short paths is found first.
var Directions = [4]Direction{East, South, West, North}

// Grid is an immutable rows×cols maze. Build it with Parse, Load or LoadFile.
type Grid struct {
	rows, cols int
	kinds      [][]CellKind
	symbols    [][]string

	entry, exit       Position
	hasEntry, hasExit bool
}
