package surface

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termpaint/geom"
)

var (
	_ Surface = (*Recorder)(nil)
	_ Surface = (*Tcell)(nil)
)

// Write is a single recorded cell write
type Write struct {
	X, Y int
	Cell Cell
	Attr Attr
}

// Recorder is an in-memory Surface that keeps a grid of the last written
// cells plus a log of every write since the last Reset
type Recorder struct {
	mu      sync.Mutex
	size    geom.Size
	grid    []Cell
	writes  []Write
	cx, cy  int
	attr    Attr
	flushes int
	closed  bool
}

// NewRecorder creates a recorder of the given size
func NewRecorder(w, h int) *Recorder {
	r := &Recorder{}
	r.Resize(w, h)
	return r
}

// Resize changes dimensions and blanks the grid
func (r *Recorder) Resize(w, h int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.size = geom.Size{W: max(w, 0), H: max(h, 0)}
	r.grid = make([]Cell, r.size.W*r.size.H)
	for i := range r.grid {
		r.grid[i] = Blank
	}
}

func (r *Recorder) put(x, y int, c Cell) {
	r.writes = append(r.writes, Write{X: x, Y: y, Cell: c, Attr: r.attr})
	if x < 0 || y < 0 || x >= r.size.W || y >= r.size.H {
		return
	}
	c.Style = r.attr.apply(c.Style)
	r.grid[y*r.size.W+x] = c
}

// MoveAndWrite implements Surface
func (r *Recorder) MoveAndWrite(x, y int, c Cell) {
	r.mu.Lock()
	r.put(x, y, c)
	r.cx, r.cy = x+1, y
	r.mu.Unlock()
}

// WriteAtCursor implements Surface
func (r *Recorder) WriteAtCursor(c Cell) {
	r.mu.Lock()
	r.put(r.cx, r.cy, c)
	r.cx++
	r.mu.Unlock()
}

// WriteString implements Surface
func (r *Recorder) WriteString(x, y int, s string, style tcell.Style) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ch := range s {
		r.put(x, y, Cell{Rune: ch, Style: style})
		x++
	}
	r.cx, r.cy = x, y
}

// DrawBox implements Surface
func (r *Recorder) DrawBox(x, y, w, h int, line LineType, style tcell.Style) {
	r.mu.Lock()
	defer r.mu.Unlock()
	drawBox(r.put, x, y, w, h, line, style)
}

// DrawDashedBox implements Surface
func (r *Recorder) DrawDashedBox(x, y, w, h int, style tcell.Style) {
	r.DrawBox(x, y, w, h, LineDashed, style)
}

// SetAttribute implements Surface
func (r *Recorder) SetAttribute(a Attr) {
	r.mu.Lock()
	r.attr = a
	r.mu.Unlock()
}

// Clear implements Surface
func (r *Recorder) Clear() {
	r.mu.Lock()
	for i := range r.grid {
		r.grid[i] = Blank
	}
	r.cx, r.cy = 0, 0
	r.mu.Unlock()
}

// Flush implements Surface
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.flushes++
	return nil
}

// Close makes later flushes fail
func (r *Recorder) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}

// Size implements Surface
func (r *Recorder) Size() geom.Size {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}

// At returns the cell last written at (x, y), Blank when out of range
func (r *Recorder) At(x, y int) Cell {
	r.mu.Lock()
	defer r.mu.Unlock()
	if x < 0 || y < 0 || x >= r.size.W || y >= r.size.H {
		return Blank
	}
	return r.grid[y*r.size.W+x]
}

// Row returns the runes of row y as a string
func (r *Recorder) Row(y int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if y < 0 || y >= r.size.H {
		return ""
	}
	out := make([]rune, r.size.W)
	for x := 0; x < r.size.W; x++ {
		out[x] = r.grid[y*r.size.W+x].Rune
	}
	return string(out)
}

// Writes returns a copy of the write log
func (r *Recorder) Writes() []Write {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Write, len(r.writes))
	copy(out, r.writes)
	return out
}

// Flushes returns the number of successful flushes
func (r *Recorder) Flushes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flushes
}

// Reset clears the write log and flush count, the grid is kept
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.writes = nil
	r.flushes = 0
	r.mu.Unlock()
}
