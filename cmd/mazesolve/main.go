// Command mazesolve loads a maze table, solves it with one of the lvmaze
// searches and prints the solution as text, optionally replaying every step
// and writing a PNG.
//
//	mazesolve -maze maze.csv [-algo bfs|dfs|astar|genetic] [-animate] [-png out.png]
//
// Defaults come from MAZE_* environment variables (and a .env file); flags
// override them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/render"
	"github.com/katalvlaran/lvmaze/solver"
)

const (
	msgMissingMarker = "Maze must contain an entry (S) and exit (E) point."
	msgNoPath        = "No path found"
)

// sleep paces animation frames; tests replace it.
var sleep = time.Sleep

type app struct {
	out    io.Writer
	logger *log.Logger
}

func (a *app) infof(format string, args ...any) {
	a.logger.Printf(config.LogInfoColor+"[APP] [INFO] "+config.LogColorReset+format, args...)
}

func (a *app) errorf(format string, args ...any) {
	a.logger.Printf(config.LogErrorColor+"[APP] [ERROR] "+config.LogColorReset+format, args...)
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{
		out:    stdout,
		logger: log.New(stderr, "", log.LstdFlags),
	}

	cfg, err := config.Load()
	if err != nil {
		a.errorf("%v", err)
		return 1
	}

	var mazeFile, algoName, pngFile, delim string
	var animate, color bool
	var delay time.Duration
	var cellPixels int
	fs := flag.NewFlagSet("mazesolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&mazeFile, "maze", "",
		"Path to the maze file (required).")
	fs.StringVar(&algoName, "algo", cfg.Algorithm,
		"Search to run: bfs, dfs, astar or genetic.")
	fs.StringVar(&delim, "delim", string(cfg.Delimiter),
		"Single-character field delimiter of the maze file.")
	fs.BoolVar(&animate, "animate", cfg.Animate,
		"If set, prints every step of the path instead of the final frame.")
	fs.DurationVar(&delay, "delay", cfg.FrameDelay,
		"Pause between animation frames.")
	fs.BoolVar(&color, "color", false,
		"If set, highlights the path with ANSI colors.")
	fs.StringVar(&pngFile, "png", "",
		"Optional .png file to which the solved maze will be saved.")
	fs.IntVar(&cellPixels, "cell_pixels", cfg.CellPixels,
		"Side of one maze cell in the PNG, in pixels.")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if mazeFile == "" || len([]rune(delim)) != 1 || cellPixels < 1 {
		a.errorf("Invalid or missing argument. Run with -help for more information.")
		return 2
	}

	algo, err := solver.ParseAlgorithm(algoName)
	if err != nil {
		a.errorf("%v", err)
		return 2
	}

	g, err := maze.LoadFile(mazeFile, maze.WithDelimiter([]rune(delim)[0]))
	if err != nil {
		a.errorf("Failed to load maze: %v", err)
		return 1
	}
	a.infof("Loaded %dx%d maze from %s", g.Rows(), g.Cols(), mazeFile)
	fmt.Fprint(a.out, render.Text(g, nil))

	outcome, err := solver.Solve(g, algo)
	if errors.Is(err, solver.ErrMissingMarker) {
		fmt.Fprintln(a.out, msgMissingMarker)
		return 1
	}
	if err != nil {
		a.errorf("Solving with %v: %v", algo, err)
		return 1
	}
	a.infof("%v expanded %d cells", algo, outcome.Expanded)
	if !outcome.Found {
		fmt.Fprintln(a.out, msgNoPath)
		return 1
	}

	paint := func(frame string) string { return frame }
	if color {
		paint = func(frame string) string {
			return strings.ReplaceAll(frame, render.PathSymbol,
				config.PathColor+render.PathSymbol+config.LogColorReset)
		}
	}
	if animate {
		for frame := range outcome.Frames() {
			fmt.Fprintln(a.out)
			fmt.Fprint(a.out, paint(render.Text(g, frame)))
			sleep(delay)
		}
	} else {
		fmt.Fprintln(a.out)
		fmt.Fprint(a.out, paint(render.Text(g, outcome.Path)))
	}
	fmt.Fprintf(a.out, "Path length: %d\n", outcome.Path.Len())

	if pngFile != "" {
		if err := a.writePNG(pngFile, g, outcome.Path, cellPixels); err != nil {
			a.errorf("%v", err)
			return 1
		}
		a.infof("Image %s written OK.", pngFile)
	}

	return 0
}

func (a *app) writePNG(name string, g *maze.Grid, path maze.Path, cellPixels int) error {
	opts := render.DefaultImageOptions()
	opts.CellPixels = cellPixels
	img, err := render.Image(g, path, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", name, err)
	}
	if err := render.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
