package decor

import "dungeonmaze/pkg/engine/world"

// ItemKind tags an item
type ItemKind int

// Item kinds
const (
	Loot ItemKind = iota
	Consumable
)

// Item is something lying on the floor
type Item struct {
	Name   string
	Kind   ItemKind
	Value  int    // loot only
	Effect string // consumables only
}

// Symbol returns the map character for the item
func (i Item) Symbol() rune {
	if i.Kind == Consumable {
		return '!'
	}
	return '$'
}

// EntityKind tags a character
type EntityKind int

// Entity kinds
const (
	Player EntityKind = iota
	Enemy
	NPC
)

// Entity is a character standing in the maze
type Entity struct {
	Name     string
	Kind     EntityKind
	Position world.Position
	Dialogue string // NPCs only
}

// Symbol returns the map character for the entity
func (e Entity) Symbol() rune {
	switch e.Kind {
	case Player:
		return '@'
	case Enemy:
		return 'E'
	default:
		return 'N'
	}
}
