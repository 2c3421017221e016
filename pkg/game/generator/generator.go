// Package generator carves mazes into world grids.
package generator

import (
	"math/rand"

	"dungeonmaze/pkg/engine/world"
)

// MazeGenerator is an interface for maze carving algorithms.
// Generate mutates the grid in place.
type MazeGenerator interface {
	Generate(grid *world.Grid)
	Name() string
}

// Rand is the source of randomness a generator draws from.
// *math/rand.Rand satisfies it; tests can supply a scripted source.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded random source. The same seed always yields the same maze.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Default returns the default generator seeded with seed
func Default(seed int64) MazeGenerator {
	return NewRecursiveBacktracker(NewRand(seed))
}
