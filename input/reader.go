package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Reader reads a tcell screen and derives press, release and drag
// transitions from the reported button state
type Reader struct {
	screen   tcell.Screen
	leftDown bool
}

// NewReader creates a reader over an initialized screen
func NewReader(screen tcell.Screen) *Reader {
	return &Reader{screen: screen}
}

// Next blocks until a translatable event arrives
// Returns EventClosed once the screen is finalized
func (r *Reader) Next() Event {
	for {
		ev, ok := r.Translate(r.screen.PollEvent())
		if ok {
			return ev
		}
	}
}

// Post injects a reload event carrying data into the screen queue
// Safe to call from any goroutine
func (r *Reader) Post(data any) error {
	if err := r.screen.PostEvent(tcell.NewEventInterrupt(data)); err != nil {
		return errors.Wrap(err, "post reload")
	}
	return nil
}

// Translate converts a tcell event, ok is false for events the editor ignores
func (r *Reader) Translate(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case nil:
		return Event{Type: EventClosed}, true

	case *tcell.EventKey:
		return Event{Type: EventKey, Key: e.Key(), Rune: e.Rune(), Mod: e.Modifiers()}, true

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventInterrupt:
		return Event{Type: EventReload, Data: e.Data()}, true

	case *tcell.EventMouse:
		kind := r.mouseKind(e.Buttons())
		if kind == MouseNone {
			return Event{}, false
		}
		x, y := e.Position()
		return Event{Type: EventMouse, Mouse: kind, X: x, Y: y, Mod: e.Modifiers()}, true
	}

	return Event{}, false
}

// mouseKind updates left-button state and returns the transition
// Plain motion and non-left buttons yield MouseNone
func (r *Reader) mouseKind(btn tcell.ButtonMask) MouseKind {
	switch {
	case btn&tcell.WheelUp != 0:
		return MouseScrollUp
	case btn&tcell.WheelDown != 0:
		return MouseScrollDown
	}

	left := btn&tcell.Button1 != 0
	switch {
	case left && !r.leftDown:
		r.leftDown = true
		return MouseLeftDown
	case left:
		return MouseDragLeft
	case r.leftDown:
		r.leftDown = false
		return MouseLeftUp
	}
	return MouseNone
}
