package maze

import "strings"

// Parse builds a Grid from a table of raw cell symbols, one slice per row.
// It deep-copies the input and locates the entry and exit markers.
// Returns a *MalformedGridError wrapping ErrEmptyGrid if rows has no rows or
// the first row is empty, or ErrNonRectangular if any row length differs.
// A grid without markers is valid here; solving it is refused later.
// Complexity: O(rows×cols) time and memory.
func Parse(rows [][]string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &MalformedGridError{Row: -1, Err: ErrEmptyGrid}
	}
	h, w := len(rows), len(rows[0])
	for r, row := range rows {
		if len(row) != w {
			return nil, &MalformedGridError{Row: r, Want: w, Got: len(row), Err: ErrNonRectangular}
		}
	}

	g := &Grid{
		rows:    h,
		cols:    w,
		kinds:   make([][]CellKind, h),
		symbols: make([][]string, h),
	}
	for r := 0; r < h; r++ {
		g.kinds[r] = make([]CellKind, w)
		g.symbols[r] = make([]string, w)
		copy(g.symbols[r], rows[r])
		for c, sym := range rows[r] {
			g.kinds[r][c] = KindOf(sym)
		}
	}
	g.entry, g.exit, g.hasEntry, g.hasExit = LocateMarkers(g)

	return g, nil
}

// LocateMarkers scans g once in row-major order and reports the entry and
// exit positions. If a marker occurs several times the last one scanned wins.
func LocateMarkers(g *Grid) (entry, exit Position, hasEntry, hasExit bool) {
	if g == nil {
		return
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			switch g.kinds[r][c] {
			case Entry:
				entry, hasEntry = Position{Row: r, Col: c}, true
			case Exit:
				exit, hasExit = Position{Row: r, Col: c}, true
			}
		}
	}

	return
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Entry returns the located entry marker; ok is false when the grid has none.
func (g *Grid) Entry() (p Position, ok bool) { return g.entry, g.hasEntry }

// Exit returns the located exit marker; ok is false when the grid has none.
func (g *Grid) Exit() (p Position, ok bool) { return g.exit, g.hasExit }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the kind of cell p. Out-of-bounds positions read as Wall.
func (g *Grid) At(p Position) CellKind {
	if !g.InBounds(p) {
		return Wall
	}

	return g.kinds[p.Row][p.Col]
}

// Symbol returns the raw symbol loaded for p, or "" when p is out of bounds.
func (g *Grid) Symbol(p Position) string {
	if !g.InBounds(p) {
		return ""
	}

	return g.symbols[p.Row][p.Col]
}

// IsOpen reports whether p is in bounds and Open. Entry and Exit are not open.
func (g *Grid) IsOpen(p Position) bool {
	return g.At(p) == Open
}

// Passable is the walk rule shared by all searches: p may be stepped onto if
// it is open or if it is the goal itself.
func (g *Grid) Passable(p, goal Position) bool {
	if !g.InBounds(p) {
		return false
	}

	return p == goal || g.kinds[p.Row][p.Col] == Open
}

// Neighbors returns the four cardinal neighbors of p in the order East,
// South, West, North. Positions are not bounds-checked.
func Neighbors(p Position) [4]Position {
	var out [4]Position
	for i, d := range Directions {
		out[i] = p.Add(d)
	}

	return out
}

// Steps appends to dst the neighbors of p that are passable towards goal,
// in Neighbors order, and returns the extended slice.
func (g *Grid) Steps(p, goal Position, dst []Position) []Position {
	for _, n := range Neighbors(p) {
		if g.Passable(n, goal) {
			dst = append(dst, n)
		}
	}

	return dst
}

// String renders the grid back as a comma-separated table.
func (g *Grid) String() string {
	return g.Format(",")
}

// Format renders the grid as a table using sep between cells.
func (g *Grid) Format(sep string) string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		sb.WriteString(strings.Join(g.symbols[r], sep))
		sb.WriteByte('\n')
	}

	return sb.String()
}
