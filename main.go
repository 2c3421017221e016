package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"dungeonmaze/pkg/engine/config"
	"dungeonmaze/pkg/engine/terminal"
	"dungeonmaze/pkg/engine/world"
	"dungeonmaze/pkg/game/decor"
	"dungeonmaze/pkg/game/generator"
	"dungeonmaze/pkg/game/renderer"
)

func initGettext(cfg config.Config) {
	if cfg.LocaleDir == "" {
		return
	}
	gotext.Configure(cfg.LocaleDir, cfg.Lang, "default")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run generates, optionally decorates, and prints one maze. It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, gotext.Get("Invalid configuration: %v", err))
		return 1
	}

	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.Int("width", cfg.Width, "maze width in cells")
	height := fs.Int("height", cfg.Height, "maze height in cells")
	seed := fs.Int64("seed", cfg.Seed, "random seed, any value including 0 (default: MAZE_SEED, else the clock)")
	plain := fs.Bool("plain", !cfg.Color, "draw without colour")
	decorate := fs.Bool("decorate", cfg.Decorate, "place doors, traps, loot and characters")
	stats := fs.Bool("stats", false, "print maze statistics")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	seedSet := cfg.SeedSet
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	initGettext(cfg)

	grid, err := world.NewGrid(*width, *height)
	if err != nil {
		fmt.Fprintln(stderr, gotext.Get("Cannot build a %dx%d maze: %v", *width, *height, err))
		return 1
	}

	if !seedSet {
		*seed = time.Now().UnixNano()
	}
	rng := generator.NewRand(*seed)
	generator.NewRecursiveBacktracker(rng, generator.WithLogger(logger)).Generate(grid)

	var layout *decor.Layout
	if *decorate {
		layout, err = decor.Decorate(grid, rng, decor.DefaultOptions())
		switch {
		case errors.Is(err, decor.ErrTooSmall):
			logger.Printf("[APP] [INFO] %s", gotext.Get("Maze is too small to decorate, skipping"))
		case err != nil:
			fmt.Fprintln(stderr, gotext.Get("Cannot decorate maze: %v", err))
			return 1
		}
	}

	if out, ok := stdout.(*os.File); ok && !terminal.Fits(out, renderer.Width(grid.Width())) {
		logger.Printf("[APP] [WARN] %s", gotext.Get("Maze is %d characters wide and will wrap in this terminal", renderer.Width(grid.Width())))
	}

	fmt.Fprint(stdout, renderer.New(renderer.Options{Plain: *plain}).Render(grid, layout))
	fmt.Fprintln(stdout, gotext.Get("Seed: %d", *seed))

	if *stats {
		printStats(stdout, grid, layout)
	}
	return 0
}

// printStats writes passage, dead end and path length figures for the maze
func printStats(w io.Writer, grid *world.Grid, layout *decor.Layout) {
	// In a tree the farthest cell from anywhere is one end of the longest path
	end, _ := grid.Farthest(grid.CenterPosition())
	_, longest := grid.Farthest(end)

	fmt.Fprintln(w, gotext.Get("Cells: %d", grid.Area()))
	fmt.Fprintln(w, gotext.Get("Passages: %d", len(grid.Passages())))
	fmt.Fprintln(w, gotext.Get("Dead ends: %d", len(grid.DeadEnds())))
	fmt.Fprintln(w, gotext.Get("Longest path: %d", longest))

	if layout == nil {
		return
	}
	fmt.Fprintln(w, gotext.Get("Entrance: %v", layout.Entrance))
	fmt.Fprintln(w, gotext.Get("Exit: %v", layout.Exit))
	for _, e := range layout.Entities() {
		if e.Dialogue != "" {
			fmt.Fprintln(w, gotext.Get("%s at %v says \"%s\"", e.Name, e.Position, e.Dialogue))
			continue
		}
		fmt.Fprintln(w, gotext.Get("%s at %v", e.Name, e.Position))
	}
}
