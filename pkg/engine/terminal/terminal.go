// Package terminal reports the size of the attached terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the width and height of the terminal behind f.
// ok is false, and the defaults are returned, when f is not a terminal.
func Size(f *os.File) (width, height int, ok bool) {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth, DefaultHeight, false
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth, DefaultHeight, false
	}
	return width, height, true
}

// Fits reports whether a line of the given width fits on f without wrapping.
// Output that is not a terminal never wraps.
func Fits(f *os.File, columns int) bool {
	width, _, ok := Size(f)
	if !ok {
		return true
	}
	return columns <= width
}
