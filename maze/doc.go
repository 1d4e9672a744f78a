// Package maze models a rectangular grid maze loaded from a delimited text
// table and the movement rules every search in lvmaze shares.
//
// What:
//
//   - Grid wraps a rows×cols table of CellKind (Open, Wall, Entry, Exit) and
//     keeps the input symbols for rendering. It is immutable once built.
//   - Parse validates a raw [][]string table; Load and LoadFile read one
//     through encoding/csv with a configurable delimiter (comma by default).
//   - LocateMarkers finds the entry ('S') and exit ('E') cells in a single
//     row-major scan. When a marker appears more than once, the last one wins.
//   - Neighbors and Grid.Steps expose 4-directional movement in the fixed
//     order East, South, West, North.
//   - Path is the ordered sequence of positions produced by a search.
//
// Walk rules:
//
//   - Only Open cells (' ') are stepping stones. Entry and Exit are not open:
//     a search starts on the entry and may step onto the goal, but never
//     routes through either marker.
//
// Complexity:
//
//   - Parse, LocateMarkers: O(rows×cols) time and memory.
//   - Neighbors, IsOpen, Passable: O(1).
//
// Errors:
//
//   - ErrMalformedGrid:   umbrella sentinel for every parse/load failure.
//   - ErrEmptyGrid:       input has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths (see *MalformedGridError).
package maze
