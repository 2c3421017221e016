package generator

import (
	"log"

	"github.com/zyedidia/generic/stack"

	"dungeonmaze/pkg/engine/world"
)

// CarveFunc is called each time a wall pair is removed, with the cell the
// generator carved from and the direction it carved in
type CarveFunc func(from world.Position, dir world.Direction)

// RecursiveBacktracker carves a perfect maze with a randomized depth-first search.
// The search uses an explicit stack so large grids do not grow the call stack.
type RecursiveBacktracker struct {
	rng     Rand
	logger  *log.Logger
	onCarve CarveFunc
}

// Option configures a RecursiveBacktracker
type Option func(*RecursiveBacktracker)

// WithLogger sets the logger used to report internal inconsistencies
func WithLogger(logger *log.Logger) Option {
	return func(b *RecursiveBacktracker) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithCarveFunc registers a callback invoked after every wall pair removal
func WithCarveFunc(fn CarveFunc) Option {
	return func(b *RecursiveBacktracker) {
		b.onCarve = fn
	}
}

// NewRecursiveBacktracker creates a generator drawing from rng
func NewRecursiveBacktracker(rng Rand, opts ...Option) *RecursiveBacktracker {
	b := &RecursiveBacktracker{
		rng:    rng,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the name of this generator
func (b *RecursiveBacktracker) Name() string {
	return "Recursive Backtracker"
}

// Generate carves the grid into a perfect maze and marks every cell visited.
// An empty grid is left alone. On a grid that has already been generated
// there is nothing unvisited to carve into, so the call changes nothing.
func (b *RecursiveBacktracker) Generate(grid *world.Grid) {
	if grid == nil || grid.Area() == 0 {
		return
	}

	start := world.Pos(b.rng.Intn(grid.Width()), b.rng.Intn(grid.Height()))
	grid.MarkVisited(start)

	path := stack.New[world.Position]()
	path.Push(start)

	for path.Size() > 0 {
		current := path.Peek()
		if _, ok := grid.Get(current); !ok {
			b.logger.Printf("[GENERATOR] [ERROR] position %v on the stack has no cell, skipping", current)
			path.Pop()
			continue
		}

		candidates := b.unvisitedNeighbors(grid, current)
		if len(candidates) == 0 {
			// Dead end, backtrack
			path.Pop()
			continue
		}

		dir := candidates[b.rng.Intn(len(candidates))]
		next := grid.NeighborPosition(current, dir)

		grid.RemoveWallBetween(current, dir)
		grid.MarkVisited(next)
		if b.onCarve != nil {
			b.onCarve(current, dir)
		}

		path.Push(next)
	}
}

// unvisitedNeighbors returns the directions from pos that lead to in-bounds,
// unvisited cells, in a freshly shuffled order
func (b *RecursiveBacktracker) unvisitedNeighbors(grid *world.Grid, pos world.Position) []world.Direction {
	dirs := world.AllDirections()
	b.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	var candidates []world.Direction
	for _, dir := range dirs {
		neighbor, ok := grid.Neighbor(pos, dir)
		if ok && !neighbor.Visited {
			candidates = append(candidates, dir)
		}
	}
	return candidates
}
