// Package solver is the solve-request boundary: it takes a loaded maze.Grid
// and an Algorithm, checks that the grid has both markers, runs the chosen
// search and returns a discriminated Outcome.
//
// Outcomes:
//
//   - success:    Outcome.Found is true and Outcome.Path runs entry→exit.
//   - no path:    Outcome.Found is false. This is a normal result, not an error.
//   - structural: an error. *MissingMarkerError (wrapping ErrMissingMarker)
//     when the grid lacks S or E, ErrGridNil, ErrUnknownAlgorithm. No search
//     is attempted in these cases.
//
// Animation:
//
//   - Outcome.Frames yields growing prefixes of the final path, the sequence
//     a presentation layer redraws step by step.
//   - WithOnVisit forwards a per-expansion hook to the search for callers
//     that want to watch the frontier instead.
package solver
