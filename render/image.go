package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/lvmaze/maze"
)

// Sentinel errors for image rendering.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("render: grid is nil")

	// ErrCellPixels is returned for a non-positive tile size.
	ErrCellPixels = errors.New("render: cell size must be positive")
)

// Palette holds the tile colors.
type Palette struct {
	Wall, Open, Entry, Exit, Path color.Color
}

// DefaultPalette: black walls, white floor, green entry, blue exit and an
// orange path.
func DefaultPalette() Palette {
	return Palette{
		Wall:  color.Black,
		Open:  color.White,
		Entry: color.RGBA{40, 180, 70, 255},
		Exit:  color.RGBA{100, 120, 255, 255},
		Path:  color.RGBA{255, 150, 30, 255},
	}
}

// ImageOptions controls Image.
type ImageOptions struct {
	CellPixels int // side of one square tile
	Palette    Palette
}

// DefaultImageOptions returns 12-pixel tiles and DefaultPalette.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{CellPixels: 12, Palette: DefaultPalette()}
}

// Image rasterises g, coloring the cells of path with Palette.Path. The
// entry and exit keep their own colors so they stay visible under the path.
func Image(g *maze.Grid, path maze.Path, opts ImageOptions) (*image.RGBA, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if opts.CellPixels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCellPixels, opts.CellPixels)
	}
	pal := opts.Palette.withDefaults()
	onPath := pathSet(path)

	// one shared tile per color
	tiles := make(map[color.Color]*image.RGBA, 5)
	tile := func(c color.Color) *image.RGBA {
		if t, ok := tiles[c]; ok {
			return t
		}
		t := image.NewRGBA(image.Rect(0, 0, opts.CellPixels, opts.CellPixels))
		draw.Draw(t, t.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
		tiles[c] = t
		return t
	}

	pic := image_utils.NewCompositeImage()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := maze.Position{Row: r, Col: c}
			_, inPath := onPath[p]
			at := image.Pt(c*opts.CellPixels, r*opts.CellPixels)
			if err := pic.AddImage(tile(pal.color(g.At(p), inPath)), at); err != nil {
				return nil, fmt.Errorf("render: adding tile %v: %w", p, err)
			}
		}
	}

	return image_utils.ToRGBA(pic), nil
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}

	return nil
}

func (p Palette) withDefaults() Palette {
	d := DefaultPalette()
	if p.Wall == nil {
		p.Wall = d.Wall
	}
	if p.Open == nil {
		p.Open = d.Open
	}
	if p.Entry == nil {
		p.Entry = d.Entry
	}
	if p.Exit == nil {
		p.Exit = d.Exit
	}
	if p.Path == nil {
		p.Path = d.Path
	}

	return p
}

func (p Palette) color(k maze.CellKind, inPath bool) color.Color {
	switch k {
	case maze.Open:
		if inPath {
			return p.Path
		}
		return p.Open
	case maze.Entry:
		return p.Entry
	case maze.Exit:
		return p.Exit
	}

	return p.Wall
}
