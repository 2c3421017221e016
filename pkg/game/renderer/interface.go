package renderer

import (
	"dungeonmaze/pkg/engine/world"
	"dungeonmaze/pkg/game/decor"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StylePlayer
	StyleEnemy
	StyleNPC
	StyleDoor
	StyleExitLocked
	StyleTrap
	StyleItem
)

// Renderer defines the interface for maze rendering backends
type Renderer interface {
	// Render draws the maze. layout may be nil for an undecorated maze.
	Render(grid *world.Grid, layout *decor.Layout) string

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}
