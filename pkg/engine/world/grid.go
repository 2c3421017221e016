package world

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a grid is built with a non-positive width or height
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// Grid is a width x height rectangle of cells, one per coordinate.
// Cells are stored by value; Get hands out copies and Set writes them back.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid creates a grid with every wall standing and no cell visited
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	g := &Grid{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[g.index(x, y)] = NewCell(Pos(x, y))
		}
	}
	return g, nil
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Area returns the number of cells in the grid
func (g *Grid) Area() int {
	return g.width * g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid) IsValidPosition(pos Position) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

// Get returns the cell at the given position. ok is false if the position is out of bounds.
func (g *Grid) Get(pos Position) (cell Cell, ok bool) {
	if !g.IsValidPosition(pos) {
		return Cell{}, false
	}
	return g.cells[g.index(pos.X, pos.Y)], true
}

// Set overwrites the cell at cell.Position. Returns false and does nothing if out of bounds.
func (g *Grid) Set(cell Cell) bool {
	if !g.IsValidPosition(cell.Position) {
		return false
	}
	g.cells[g.index(cell.Position.X, cell.Position.Y)] = cell
	return true
}

// NeighborPosition returns the position adjacent to pos in the given direction.
// The result may be out of bounds; combine with Get to detect that.
func (g *Grid) NeighborPosition(pos Position, dir Direction) Position {
	return pos.Step(dir)
}

// Neighbor returns the cell adjacent to pos in the given direction, if there is one
func (g *Grid) Neighbor(pos Position, dir Direction) (Cell, bool) {
	if !dir.IsValid() {
		return Cell{}, false
	}
	return g.Get(g.NeighborPosition(pos, dir))
}

// MarkVisited sets the visited flag on the cell at pos. Returns false if out of bounds.
func (g *Grid) MarkVisited(pos Position) bool {
	cell, ok := g.Get(pos)
	if !ok {
		return false
	}
	cell.Visited = true
	return g.Set(cell)
}

// RemoveWallBetween opens the passage between pos and its neighbor in dir.
// Both sides of the shared edge are cleared together. Returns false, leaving
// the grid untouched, if either cell is out of bounds.
func (g *Grid) RemoveWallBetween(pos Position, dir Direction) bool {
	cell, ok := g.Get(pos)
	if !ok {
		return false
	}
	neighbor, ok := g.Neighbor(pos, dir)
	if !ok {
		return false
	}

	cell.Walls[dir] = false
	neighbor.Walls[dir.Opposite()] = false

	g.Set(cell)
	g.Set(neighbor)
	return true
}

// IsOpen returns true if pos and its neighbor in dir are joined by a passage
func (g *Grid) IsOpen(pos Position, dir Direction) bool {
	cell, ok := g.Get(pos)
	if !ok || cell.HasWall(dir) {
		return false
	}
	neighbor, ok := g.Neighbor(pos, dir)
	return ok && !neighbor.HasWall(dir.Opposite())
}

// CenterPosition returns the position of the grid center
func (g *Grid) CenterPosition() Position {
	return Pos(g.width/2, g.height/2)
}

// ForEachCell iterates over all cells in row-major order, calling the provided function for each
func (g *Grid) ForEachCell(fn func(cell Cell)) {
	for _, cell := range g.cells {
		fn(cell)
	}
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{cells: cells, width: g.width, height: g.height}
}
