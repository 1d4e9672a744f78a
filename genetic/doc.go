// Package genetic is the "genetic algorithm" entry of the solver menu.
//
// No evolutionary search is performed. Search delegates to bfs.Search with
// the same options and returns its Result unchanged, so its path is always
// identical to breadth-first search on the same input. The package exists so
// callers can select the mode by name and so a real implementation can later
// replace Search without touching the solver.
package genetic
