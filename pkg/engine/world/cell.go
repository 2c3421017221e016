// Package world provides 2D grid-based maze primitives: positions, directions,
// cells with four walls, and the grid that owns them.
package world

// Cell represents a single cell in the grid.
// Walls is indexed by Direction so every direction always has an entry.
type Cell struct {
	Position Position

	// Walls[d] is true while the wall on side d is standing
	Walls [directionCount]bool

	// Visited is set once, when the generator first enters the cell
	Visited bool
}

// NewCell creates a new cell at the given position with all walls up
func NewCell(pos Position) Cell {
	return Cell{
		Position: pos,
		Walls:    [directionCount]bool{true, true, true, true},
	}
}

// HasWall returns true if the wall on the given side is standing.
// Invalid directions are reported as walled.
func (c Cell) HasWall(dir Direction) bool {
	if !dir.IsValid() {
		return true
	}
	return c.Walls[dir]
}

// OpenDirections returns the directions whose walls have been removed
func (c Cell) OpenDirections() []Direction {
	var open []Direction
	for _, dir := range AllDirections() {
		if !c.Walls[dir] {
			open = append(open, dir)
		}
	}
	return open
}

// WallCount returns the number of standing walls
func (c Cell) WallCount() int {
	n := 0
	for _, wall := range c.Walls {
		if wall {
			n++
		}
	}
	return n
}

// IsPassable returns true if at least one wall has been removed
func (c Cell) IsPassable() bool {
	return c.WallCount() < directionCount
}

// IsDeadEnd returns true if exactly one wall has been removed
func (c Cell) IsDeadEnd() bool {
	return c.WallCount() == directionCount-1
}
