// Package bfs implements breadth-first search over a maze.Grid, returning the
// fewest-steps path from a start cell to a goal cell.
//
// What
//
//   - FIFO frontier seeded with the start cell and the one-cell path [start].
//   - Each dequeued cell is checked against the goal first; otherwise its
//     passable neighbors (maze.Grid.Steps, order East, South, West, North)
//     are marked visited and enqueued with the path extended by one cell.
//   - Visited marking happens at enqueue time, so a cell is queued at most once.
//   - Result carries the Path (nil when the goal is unreachable) and the
//     expansion order in Visited.
//
// Why
//
//   - In an unweighted 4-connected grid BFS returns a shortest path.
//   - For a fixed grid and the fixed neighbor order the result is deterministic.
//
// Hooks
//
//   - OnEnqueue (when a cell joins the frontier)
//   - OnVisit   (when a cell is expanded; may abort with an error)
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N) cells, each carrying a path copy of up to N cells: O(N²) worst case.
//   - Memory: O(N²) worst case for the per-entry paths.
//
// Usage
//
//	res, err := bfs.Search(g, entry, exit)
//	if err != nil {
//	    // ErrGridNil, ErrOutOfBounds, ErrOptionViolation, ctx.Err() or a hook error
//	}
//	if res.Path == nil {
//	    // no path
//	}
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOutOfBounds      if start or goal lies outside the grid.
//   - ErrOptionViolation  for invalid options (negative MaxExpansions).
//   - context errors from WithContext, wrapped OnVisit errors.
package bfs
