// Package render draws a maze.Grid and an optional solution path.
//
// Text prints every cell's symbol on one line per row without a delimiter,
// replacing path cells with '*'. Image rasterises the same picture as
// colored square tiles composited with image_utils, and WritePNG encodes it.
//
// Nothing here depends on how the path was found; pass any maze.Path, such as
// one frame from solver.Outcome.Frames, to draw an intermediate step.
package render
