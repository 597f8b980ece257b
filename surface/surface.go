// Package surface is the render surface every component draws through.
//
// All coordinates are absolute, zero-based, origin top-left. Writes are
// queued until Flush, which callers invoke once per logical batch of drawing
// so a frame is never shown half-drawn.
package surface

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/termpaint/geom"
)

// ErrClosed is returned by Flush after the surface has been closed
var ErrClosed = errors.New("surface closed")

// Cell is a single styled character
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Blank is the default empty cell
var Blank = Cell{Rune: ' ', Style: tcell.StyleDefault}

// Attr represents text attributes applied on top of each written cell's style (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrUnderline Attr = 1 << 2
	AttrReverse   Attr = 1 << 3
)

// apply merges attribute bits into a style
func (a Attr) apply(st tcell.Style) tcell.Style {
	if a&AttrBold != 0 {
		st = st.Bold(true)
	}
	if a&AttrDim != 0 {
		st = st.Dim(true)
	}
	if a&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if a&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// Surface accepts drawing commands against a terminal
type Surface interface {
	// MoveAndWrite moves the cursor to (x, y), writes the cell and advances the cursor
	MoveAndWrite(x, y int, c Cell)

	// WriteAtCursor writes at the current cursor and advances it one column
	WriteAtCursor(c Cell)

	// WriteString writes s starting at (x, y) with a single style
	WriteString(x, y int, s string, style tcell.Style)

	// DrawBox outlines a w x h rectangle with its top-left corner at (x, y)
	DrawBox(x, y, w, h int, line LineType, style tcell.Style)

	// DrawDashedBox outlines a rectangle with dashed edges
	DrawDashedBox(x, y, w, h int, style tcell.Style)

	// SetAttribute sets attributes for subsequent writes, AttrNone resets
	SetAttribute(a Attr)

	// Clear blanks the whole surface
	Clear()

	// Flush makes queued writes visible
	Flush() error

	// Size returns current surface dimensions
	Size() geom.Size
}
