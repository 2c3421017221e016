// Package decor places doors, traps, loot and characters on a generated maze.
// It reads the maze's walls but never changes them.
package decor

// TileKind tags what a tile is
type TileKind int

// Tile kinds
const (
	Floor TileKind = iota
	Wall
	Door
	Trap
)

// SpikeTrap is the default trap kind
const SpikeTrap = "Spike Trap"

// Tile is the decoration laid over a single maze cell
type Tile struct {
	Kind     TileKind
	Locked   bool   // doors only
	TrapKind string // traps only
}

// Symbol returns the map character for the tile
func (t Tile) Symbol() rune {
	switch t.Kind {
	case Wall:
		return '#'
	case Door:
		if t.Locked {
			return 'L'
		}
		return 'D'
	case Trap:
		return '^'
	default:
		return '.'
	}
}

// Passable returns true if a character can stand on the tile.
// Traps are passable; locked doors and walls are not.
func (t Tile) Passable() bool {
	switch t.Kind {
	case Wall:
		return false
	case Door:
		return !t.Locked
	default:
		return true
	}
}

func (k TileKind) String() string {
	switch k {
	case Floor:
		return "Floor"
	case Wall:
		return "Wall"
	case Door:
		return "Door"
	case Trap:
		return "Trap"
	default:
		return "Unknown"
	}
}
