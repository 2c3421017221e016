// Package renderer draws mazes as text.
package renderer

import (
	"strings"

	"github.com/gookit/color"

	"dungeonmaze/pkg/engine/world"
	"dungeonmaze/pkg/game/decor"
)

// Drawing pieces. Each cell is cellWidth characters wide between corner posts.
const (
	Corner      = "+"
	WallH       = "---"
	OpenH       = "   "
	WallV       = "|"
	OpenV       = " "
	cellWidth   = len(WallH)
	columnWidth = cellWidth + len(WallV)
)

// Options configures an ASCII renderer
type Options struct {
	// Plain disables colour
	Plain bool
}

// ASCII renders mazes with +---+ box drawing, optionally coloured
type ASCII struct {
	plain  bool
	styles map[TextStyle]color.Style
}

// New creates a new ASCII renderer
func New(opts Options) *ASCII {
	return &ASCII{
		plain: opts.Plain,
		styles: map[TextStyle]color.Style{
			StyleWall:       {color.FgGray},
			StylePlayer:     {color.FgGreen, color.BgBlack, color.OpBold},
			StyleEnemy:      {color.FgRed, color.OpBold},
			StyleNPC:        {color.FgCyan},
			StyleDoor:       {color.FgYellow, color.OpBold},
			StyleExitLocked: {color.FgRed},
			StyleTrap:       {color.FgMagenta},
			StyleItem:       {color.FgGreen, color.OpBold},
		},
	}
}

// Width returns how many characters wide a maze of the given column count renders
func Width(columns int) int {
	return columns*columnWidth + len(Corner)
}

// StyleText applies a style to text. Plain renderers return text unchanged.
func (a *ASCII) StyleText(text string, style TextStyle) string {
	s, ok := a.styles[style]
	if a.plain || !ok {
		return text
	}
	return s.Sprint(text)
}

// Render draws the maze row by row: a wall line above each row of cells,
// then the cells, then a closing wall line for the south edge.
// A layout built for a different grid is ignored.
func (a *ASCII) Render(grid *world.Grid, layout *decor.Layout) string {
	if grid == nil || grid.Area() == 0 {
		return ""
	}
	if layout != nil && layout.Grid() != grid {
		layout = nil
	}

	var sb strings.Builder
	for y := 0; y < grid.Height(); y++ {
		a.writeHorizontal(&sb, grid, y, world.North)
		a.writeCells(&sb, grid, layout, y)
	}
	a.writeHorizontal(&sb, grid, grid.Height()-1, world.South)
	return sb.String()
}

// writeHorizontal writes the wall line on the given side of row y
func (a *ASCII) writeHorizontal(sb *strings.Builder, grid *world.Grid, y int, side world.Direction) {
	sb.WriteString(a.StyleText(Corner, StyleWall))
	for x := 0; x < grid.Width(); x++ {
		cell, _ := grid.Get(world.Pos(x, y))
		if cell.HasWall(side) {
			sb.WriteString(a.StyleText(WallH, StyleWall))
		} else {
			sb.WriteString(OpenH)
		}
		sb.WriteString(a.StyleText(Corner, StyleWall))
	}
	sb.WriteString("\n")
}

// writeCells writes the row of cells at y with their west and east walls
func (a *ASCII) writeCells(sb *strings.Builder, grid *world.Grid, layout *decor.Layout, y int) {
	first, _ := grid.Get(world.Pos(0, y))
	a.writeVertical(sb, first.HasWall(world.West))

	for x := 0; x < grid.Width(); x++ {
		pos := world.Pos(x, y)
		cell, _ := grid.Get(pos)
		sb.WriteString(" " + a.cellContent(layout, pos) + " ")
		a.writeVertical(sb, cell.HasWall(world.East))
	}
	sb.WriteString("\n")
}

func (a *ASCII) writeVertical(sb *strings.Builder, wall bool) {
	if wall {
		sb.WriteString(a.StyleText(WallV, StyleWall))
		return
	}
	sb.WriteString(OpenV)
}

// cellContent returns the single styled character drawn inside a cell
func (a *ASCII) cellContent(layout *decor.Layout, pos world.Position) string {
	if layout == nil {
		return " "
	}
	symbol := layout.Symbol(pos)
	return a.StyleText(string(symbol), styleFor(layout, pos, symbol))
}

func styleFor(layout *decor.Layout, pos world.Position, symbol rune) TextStyle {
	if e, ok := layout.EntityAt(pos); ok {
		switch e.Kind {
		case decor.Player:
			return StylePlayer
		case decor.Enemy:
			return StyleEnemy
		default:
			return StyleNPC
		}
	}
	if len(layout.ItemsAt(pos)) > 0 {
		return StyleItem
	}
	tile, _ := layout.TileAt(pos)
	switch {
	case tile.Kind == decor.Door && tile.Locked:
		return StyleExitLocked
	case tile.Kind == decor.Door:
		return StyleDoor
	case tile.Kind == decor.Trap:
		return StyleTrap
	case symbol == '#':
		return StyleWall
	default:
		return StyleNormal
	}
}

var _ Renderer = (*ASCII)(nil)
