// Package canvas holds the drawing buffer and the bordered canvas component
// that renders it and applies tools through a viewport transform.
package canvas

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termpaint/geom"
	"github.com/lixenwraith/termpaint/surface"
	"github.com/lixenwraith/termpaint/tool"
	"github.com/lixenwraith/termpaint/viewport"
)

// Stroke describes the effect of one tool application on the buffer
type Stroke struct {
	Col, Row int
	Cells    int // cells stamped, 0 for inert tools
}

// Canvas is the bordered drawing component
// The viewport is the frame inset by the one-cell border
type Canvas struct {
	Frame  geom.Area
	Border tcell.Style
	buf    *Buffer
}

// New creates a canvas with a fixed cols x rows buffer
func New(frame geom.Area, cols, rows int) *Canvas {
	return &Canvas{
		Frame:  frame,
		Border: tcell.StyleDefault,
		buf:    NewBuffer(cols, rows),
	}
}

// Buffer returns the content buffer
func (c *Canvas) Buffer() *Buffer {
	return c.buf
}

// Transform computes the screen <-> buffer mapping for the terminal size
func (c *Canvas) Transform(term geom.Size) viewport.Transform {
	view := c.Frame.Resolve(term).Inset(1)
	return viewport.ComputeRect(view, geom.Size{W: c.buf.Cols(), H: c.buf.Rows()})
}

// Draw renders the dashed border and the visible buffer window
// Nothing is drawn when the viewport has no room inside its border
func (c *Canvas) Draw(s surface.Surface, t viewport.Transform) {
	v := t.Viewport
	if v.Empty() {
		return
	}
	s.DrawDashedBox(v.X-1, v.Y-1, v.W+2, v.H+2, c.Border)
	c.drawRows(s, t)
}

// drawRows writes each visible row with one cursor move followed by sequential writes
func (c *Canvas) drawRows(s surface.Surface, t viewport.Transform) {
	for i := 0; i < t.Visible.H; i++ {
		screenY, row, colStart, ok := t.RowSpan(i)
		if !ok {
			return
		}
		s.MoveAndWrite(t.StartX, screenY, c.buf.At(colStart, row))
		for k := 1; k < t.Visible.W; k++ {
			s.WriteAtCursor(c.buf.At(colStart+k, row))
		}
	}
}

// Apply runs the tool at screen (x, y)
// Returns false without touching buffer or surface when the point does not hit a visible cell
func (c *Canvas) Apply(s surface.Surface, t viewport.Transform, tl tool.Tool, brush Cell, x, y int) (Stroke, bool) {
	col, row, ok := t.Hit(x, y)
	if !ok {
		return Stroke{}, false
	}

	st := Stroke{Col: col, Row: row}
	switch tl {
	case tool.Brush:
		c.buf.Paint(col, row, brush)
		s.MoveAndWrite(x, y, brush)
		st.Cells = 1
	case tool.Erase:
		c.buf.Erase(col, row)
		s.MoveAndWrite(x, y, Blank)
		st.Cells = 1
	case tool.Bucket:
		st.Cells = c.buf.FloodFill(col, row, brush)
		c.drawRows(s, t)
	}
	return st, true
}

// Clear blanks the buffer and redraws the visible window
func (c *Canvas) Clear(s surface.Surface, t viewport.Transform) {
	c.buf.Clear()
	c.drawRows(s, t)
}

// Text returns the buffer contents as plain text
func (c *Canvas) Text() string {
	return c.buf.Text()
}
