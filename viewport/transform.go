// Package viewport maps between absolute screen coordinates and content
// buffer indices for a fixed-size buffer shown through a viewport rectangle.
//
// A single per-axis offset covers every layout:
//   - buffer smaller than viewport: buffer centered, margins left blank
//   - buffer larger than viewport: viewport shows the centered window of the buffer
//   - buffer equal to viewport: identity up to the viewport origin
//
// Transforms are recomputed for every draw and every input event, never cached
// across terminal resizes.
package viewport

import "github.com/lixenwraith/termpaint/geom"

// Transform is the screen <-> buffer mapping for one terminal size
type Transform struct {
	Viewport geom.Rect // Absolute viewport bounds
	Content  geom.Size // Buffer dimensions (cols, rows)
	Visible  geom.Size // Component-wise min of viewport and content

	// Absolute screen position where the first visible buffer cell is drawn
	StartX, StartY int

	// buffer index = screen coordinate + offset
	DX, DY int
}

// Compute resolves the area against the terminal size and builds the transform
func Compute(area geom.Area, term geom.Size, content geom.Size) Transform {
	return ComputeRect(area.Resolve(term), content)
}

// ComputeRect builds the transform for an already resolved viewport rectangle
func ComputeRect(view geom.Rect, content geom.Size) Transform {
	vw, vh := max(view.W, 0), max(view.H, 0)
	cols, rows := max(content.W, 0), max(content.H, 0)

	t := Transform{
		Viewport: view,
		Content:  geom.Size{W: cols, H: rows},
		Visible:  geom.Size{W: min(cols, vw), H: min(rows, vh)},
	}

	t.DX, t.StartX = axis(cols, vw, view.X)
	t.DY, t.StartY = axis(rows, vh, view.Y)
	return t
}

// axis computes offset and content start for a single dimension
// Truncating division: odd differences round toward zero
func axis(contentDim, viewDim, viewStart int) (offset, start int) {
	offset = (contentDim-viewDim)/2 - viewStart
	if contentDim < viewDim {
		// Buffer centered inside the viewport, offset is never positive here
		return offset, -offset
	}
	return offset, viewStart
}

// ToBuffer maps a screen coordinate to buffer indices
// ok is false when the result falls outside the buffer
func (t Transform) ToBuffer(x, y int) (col, row int, ok bool) {
	col = x + t.DX
	row = y + t.DY
	if col < 0 || col >= t.Content.W || row < 0 || row >= t.Content.H {
		return 0, 0, false
	}
	return col, row, true
}

// ToScreen maps buffer indices to the screen coordinate where the cell is drawn
// ok is false when the cell is not inside the visible region
func (t Transform) ToScreen(col, row int) (x, y int, ok bool) {
	x = col - t.DX
	y = row - t.DY
	if !t.VisibleRect().Contains(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

// VisibleRect returns the absolute rectangle where buffer cells are drawn
func (t Transform) VisibleRect() geom.Rect {
	return geom.Rect{X: t.StartX, Y: t.StartY, W: t.Visible.W, H: t.Visible.H}
}

// Hit maps a screen coordinate to buffer indices only if it lies in the visible region
// Points on the viewport margin or outside the viewport never hit
func (t Transform) Hit(x, y int) (col, row int, ok bool) {
	if !t.VisibleRect().Contains(x, y) {
		return 0, 0, false
	}
	return t.ToBuffer(x, y)
}

// RowSpan returns the buffer slice bounds drawn on visible row i (0-based)
// Caller draws cells [colStart, colStart+Visible.W) of bufRow starting at (StartX, screenY)
func (t Transform) RowSpan(i int) (screenY, bufRow, colStart int, ok bool) {
	if i < 0 || i >= t.Visible.H || t.Visible.W == 0 {
		return 0, 0, 0, false
	}
	screenY = t.StartY + i
	bufRow = screenY + t.DY
	colStart = t.StartX + t.DX
	return screenY, bufRow, colStart, true
}
