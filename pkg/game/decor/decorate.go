package decor

import (
	"errors"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"dungeonmaze/pkg/engine/world"
)

var (
	// ErrNotGenerated is returned when decorating a grid that is not a perfect maze
	ErrNotGenerated = errors.New("grid has not been generated into a perfect maze")
	// ErrTooSmall is returned when the maze has fewer than two cells
	ErrTooSmall = errors.New("maze needs at least two cells to place an entrance and an exit")
)

// Rand is the source of randomness used for placement
type Rand interface {
	Intn(n int) int
}

// Options controls what gets placed
type Options struct {
	Traps    int
	TrapKind string

	LootName     string
	LootMinValue int
	LootMaxValue int

	EnemyName   string
	NPCName     string
	NPCDialogue string
}

// DefaultOptions returns the standard dungeon dressing
func DefaultOptions() Options {
	return Options{
		Traps:        3,
		TrapKind:     SpikeTrap,
		LootName:     "Gold Coins",
		LootMinValue: 10,
		LootMaxValue: 100,
		EnemyName:    "Goblin",
		NPCName:      "Old Wizard",
		NPCDialogue:  "Beware of the traps ahead!",
	}
}

// Layout is a decorated maze. It keeps a read-only view of the grid it was built from.
type Layout struct {
	grid     *world.Grid
	tiles    map[world.Position]Tile
	items    map[world.Position][]Item
	entities map[world.Position]Entity

	Entrance world.Position
	Exit     world.Position
}

// Decorate dresses a generated maze: an unlocked entrance with the player on it,
// a locked exit at the far end of the longest path from the entrance, traps,
// a loot chest on a dead end, an enemy and an NPC. Placements use distinct cells;
// when the maze runs out of free cells the remaining placements are skipped.
func Decorate(grid *world.Grid, rng Rand, opts Options) (*Layout, error) {
	if grid == nil || !grid.IsPerfect() {
		return nil, ErrNotGenerated
	}
	if grid.Area() < 2 {
		return nil, ErrTooSmall
	}

	l := &Layout{
		grid:     grid,
		tiles:    make(map[world.Position]Tile, grid.Area()),
		items:    make(map[world.Position][]Item),
		entities: make(map[world.Position]Entity),
	}

	var cells []world.Position
	grid.ForEachCell(func(cell world.Cell) {
		kind := Floor
		if !cell.IsPassable() {
			kind = Wall
		}
		l.tiles[cell.Position] = Tile{Kind: kind}
		cells = append(cells, cell.Position)
	})

	occupied := mapset.New[world.Position]()

	l.Entrance = cells[rng.Intn(len(cells))]
	l.Exit, _ = grid.Farthest(l.Entrance)
	l.tiles[l.Entrance] = Tile{Kind: Door}
	l.tiles[l.Exit] = Tile{Kind: Door, Locked: true}
	occupied.Put(l.Entrance)
	occupied.Put(l.Exit)
	l.entities[l.Entrance] = Entity{Name: "Player", Kind: Player, Position: l.Entrance}

	for i := 0; i < opts.Traps; i++ {
		pos, ok := pickFree(rng, cells, &occupied)
		if !ok {
			break
		}
		l.tiles[pos] = Tile{Kind: Trap, TrapKind: opts.TrapKind}
	}

	lootSpot, ok := pickFree(rng, grid.DeadEnds(), &occupied)
	if !ok {
		lootSpot, ok = pickFree(rng, cells, &occupied)
	}
	if ok {
		value := opts.LootMinValue
		if span := opts.LootMaxValue - opts.LootMinValue; span > 0 {
			value += rng.Intn(span + 1)
		}
		l.items[lootSpot] = append(l.items[lootSpot], Item{Name: opts.LootName, Kind: Loot, Value: value})
	}

	if pos, ok := pickFree(rng, cells, &occupied); ok {
		l.entities[pos] = Entity{Name: opts.EnemyName, Kind: Enemy, Position: pos}
	}
	if pos, ok := pickFree(rng, cells, &occupied); ok {
		l.entities[pos] = Entity{Name: opts.NPCName, Kind: NPC, Position: pos, Dialogue: opts.NPCDialogue}
	}

	return l, nil
}

// pickFree chooses a random candidate that is not yet occupied and marks it occupied
func pickFree(rng Rand, candidates []world.Position, occupied *mapset.Set[world.Position]) (world.Position, bool) {
	var free []world.Position
	for _, pos := range candidates {
		if !occupied.Has(pos) {
			free = append(free, pos)
		}
	}
	if len(free) == 0 {
		return world.Position{}, false
	}
	pos := free[rng.Intn(len(free))]
	occupied.Put(pos)
	return pos, true
}

// Grid returns the maze the layout decorates
func (l *Layout) Grid() *world.Grid {
	return l.grid
}

// TileAt returns the tile at pos. ok is false outside the maze.
func (l *Layout) TileAt(pos world.Position) (tile Tile, ok bool) {
	tile, ok = l.tiles[pos]
	return tile, ok
}

// ItemsAt returns the items lying at pos
func (l *Layout) ItemsAt(pos world.Position) []Item {
	return l.items[pos]
}

// EntityAt returns the character standing at pos, if any
func (l *Layout) EntityAt(pos world.Position) (Entity, bool) {
	e, ok := l.entities[pos]
	return e, ok
}

// Entities returns every placed character in row-major order of position
func (l *Layout) Entities() []Entity {
	list := make([]Entity, 0, len(l.entities))
	for _, e := range l.entities {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Position.Less(list[j].Position)
	})
	return list
}

// Positions returns every position with the given tile kind in row-major order
func (l *Layout) Positions(kind TileKind) []world.Position {
	var found []world.Position
	l.grid.ForEachCell(func(cell world.Cell) {
		if l.tiles[cell.Position].Kind == kind {
			found = append(found, cell.Position)
		}
	})
	return found
}

// Symbol returns the character to draw for pos: a character if one stands there,
// otherwise the top item, otherwise the tile. Plain floor draws as a space.
func (l *Layout) Symbol(pos world.Position) rune {
	if e, ok := l.entities[pos]; ok {
		return e.Symbol()
	}
	if items := l.items[pos]; len(items) > 0 {
		return items[len(items)-1].Symbol()
	}
	tile, ok := l.tiles[pos]
	if !ok || tile.Kind == Floor {
		return ' '
	}
	return tile.Symbol()
}
