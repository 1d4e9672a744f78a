// Package dfs implements depth-first search over a maze.Grid using an
// explicit LIFO stack of (cell, path) pairs.
//
// What:
//
//   - The stack is seeded with the start cell and the path [start].
//   - A popped cell is compared with the goal first. Otherwise, if it has not
//     been visited yet, it is marked visited and every passable neighbor that
//     is still unvisited is pushed (order East, South, West, North) with the
//     path extended by one cell.
//   - The visited check happens when a cell is popped, not when it is pushed,
//     so the same cell may sit on the stack several times before it is first
//     expanded. This decides both the work done and the exact path returned.
//
// Why:
//
//   - Cheap, memory-light exploration that commits to one corridor at a time.
//   - No shortest-path guarantee: the path found is usually longer than BFS's.
//
// Complexity (N = rows×cols):
//
//   - Time:   O(N) expansions, up to 4 pushes each, each copying a path of up to N cells.
//   - Memory: O(N²) worst case for the stacked paths.
//
// Options:
//
//   - WithContext(ctx)        cancellation, checked once per pop.
//   - WithOnVisit(fn)         hook on each expansion; an error aborts.
//   - WithOnPush(fn)          hook on each push.
//   - WithMaxExpansions(n)    stop without a path after n expansions (n ≥ 0).
//
// Errors:
//
//   - ErrGridNil, ErrOutOfBounds, ErrOptionViolation
//   - context.Canceled / DeadlineExceeded, wrapped hook errors.
package dfs
