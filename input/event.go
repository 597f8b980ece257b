// Package input translates terminal events into editor events.
package input

import "github.com/gdamore/tcell/v2"

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventReload // Posted from outside the loop, carries Data
	EventClosed // Input closed
)

// MouseKind is the derived mouse transition
type MouseKind uint8

const (
	MouseNone MouseKind = iota
	MouseLeftDown
	MouseLeftUp
	MouseDragLeft
	MouseScrollUp
	MouseScrollDown
)

// Event is a single editor input event
type Event struct {
	Type EventType
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask

	// Mouse event fields, absolute zero-based
	Mouse MouseKind
	X, Y  int

	Width  int // For EventResize
	Height int // For EventResize

	Data any // For EventReload
}

// Source yields events one at a time, blocking
type Source interface {
	Next() Event
}

// String returns human-readable type name
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "Key"
	case EventMouse:
		return "Mouse"
	case EventResize:
		return "Resize"
	case EventReload:
		return "Reload"
	case EventClosed:
		return "Closed"
	default:
		return "None"
	}
}

// String returns human-readable mouse transition name
func (k MouseKind) String() string {
	switch k {
	case MouseLeftDown:
		return "LeftDown"
	case MouseLeftUp:
		return "LeftUp"
	case MouseDragLeft:
		return "DragLeft"
	case MouseScrollUp:
		return "ScrollUp"
	case MouseScrollDown:
		return "ScrollDown"
	default:
		return "None"
	}
}
