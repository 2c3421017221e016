package world

// Direction is one of the four sides of a cell. The values index Cell.Walls,
// clockwise from north.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

const directionCount = 4

var (
	directionNames = [directionCount]string{"North", "East", "South", "West"}

	// grid y grows southwards
	directionDeltas = [directionCount]Position{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
)

// AllDirections returns a fresh slice of the four directions in wall-index order
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionNames[d]
}

func (d Direction) IsValid() bool {
	return d >= 0 && d < directionCount
}

// Opposite returns the side facing d across a shared wall. Invalid values map to themselves.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + directionCount/2) % directionCount
}

// Delta returns the unit step taken when moving towards d, or (0,0) for an invalid value.
func (d Direction) Delta() (dx, dy int) {
	if !d.IsValid() {
		return 0, 0
	}
	step := directionDeltas[d]
	return step.X, step.Y
}
