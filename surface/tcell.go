package surface

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/termpaint/constants"
	"github.com/lixenwraith/termpaint/geom"
)

// Tcell is a Surface backed by a tcell screen
type Tcell struct {
	mu     sync.Mutex
	screen tcell.Screen
	cx, cy int
	attr   Attr
	opened bool
	closed bool

	drained int
}

// NewTcell wraps an uninitialized screen, Open takes ownership of it
func NewTcell(screen tcell.Screen) *Tcell {
	return &Tcell{screen: screen}
}

// Open initializes the screen, enables mouse press and drag reporting, and
// clears the display
func (t *Tcell) Open() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.opened {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	t.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	t.screen.HideCursor()
	t.screen.Clear()
	t.opened = true
	return nil
}

// Screen exposes the underlying tcell screen for the input reader
func (t *Tcell) Screen() tcell.Screen {
	return t.screen
}

// Close disables mouse reporting, drains any input the terminal was still
// delivering, and restores the terminal. Safe to call more than once
func (t *Tcell) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || !t.opened {
		t.closed = true
		return
	}
	t.closed = true

	t.screen.DisableMouse()
	t.drained = t.drainInput()
	t.screen.Fini()
}

// drainInput reads and discards queued input until a poll interval passes
// with nothing new, for at most DrainMaxPolls intervals
// Runs after the event loop has stopped, so PollEvent has no other reader
func (t *Tcell) drainInput() int {
	n := 0
	for i := 0; i < constants.DrainMaxPolls; i++ {
		for j := 0; j < constants.DrainBatchSize && t.screen.HasPendingEvent(); j++ {
			if t.screen.PollEvent() == nil {
				return n
			}
			n++
		}
		time.Sleep(constants.DrainPollInterval)
		if !t.screen.HasPendingEvent() {
			break
		}
	}
	return n
}

func (t *Tcell) put(x, y int, c Cell) {
	if c.Rune == 0 {
		c.Rune = ' '
	}
	t.screen.SetContent(x, y, c.Rune, nil, t.attr.apply(c.Style))
}

// MoveAndWrite implements Surface
func (t *Tcell) MoveAndWrite(x, y int, c Cell) {
	t.mu.Lock()
	t.put(x, y, c)
	t.cx, t.cy = x+1, y
	t.mu.Unlock()
}

// WriteAtCursor implements Surface
func (t *Tcell) WriteAtCursor(c Cell) {
	t.mu.Lock()
	t.put(t.cx, t.cy, c)
	t.cx++
	t.mu.Unlock()
}

// WriteString implements Surface
func (t *Tcell) WriteString(x, y int, s string, style tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, r := range s {
		t.put(x, y, Cell{Rune: r, Style: style})
		x++
	}
	t.cx, t.cy = x, y
}

// DrawBox implements Surface
func (t *Tcell) DrawBox(x, y, w, h int, line LineType, style tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()
	drawBox(t.put, x, y, w, h, line, style)
}

// DrawDashedBox implements Surface
func (t *Tcell) DrawDashedBox(x, y, w, h int, style tcell.Style) {
	t.DrawBox(x, y, w, h, LineDashed, style)
}

// SetAttribute implements Surface
func (t *Tcell) SetAttribute(a Attr) {
	t.mu.Lock()
	t.attr = a
	t.mu.Unlock()
}

// Clear implements Surface
func (t *Tcell) Clear() {
	t.mu.Lock()
	t.screen.Clear()
	t.cx, t.cy = 0, 0
	t.mu.Unlock()
}

// Flush implements Surface
func (t *Tcell) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	t.screen.Show()
	return nil
}

// Size implements Surface
func (t *Tcell) Size() geom.Size {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, h := t.screen.Size()
	return geom.Size{W: w, H: h}
}
