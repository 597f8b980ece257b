package app

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termpaint/config"
	"github.com/lixenwraith/termpaint/input"
	"github.com/lixenwraith/termpaint/tool"
)

func (e *Editor) handleKey(ev input.Event) error {
	switch ev.Key {
	case tcell.KeyCtrlC:
		e.running = false
		return nil
	case tcell.KeyRune:
	default:
		return nil
	}

	switch r := ev.Rune; {
	case r == 'q':
		e.running = false
		return nil

	case r >= '1' && r <= '9':
		if !e.panel.SelectIndex(int(r - '1')) {
			return nil
		}
		e.sound.PlayTool()
		e.panel.Draw(e.surface, e.term)

	case r == ']':
		e.panel.NextBrush()

	case r == '[':
		e.panel.PrevBrush()

	case r == 'y':
		e.yank()

	case r == 'C':
		e.canvas.Clear(e.surface, e.canvas.Transform(e.term))
		e.setStatus("Cleared canvas", statusSuccess)

	default:
		return nil
	}

	return e.finish()
}

func (e *Editor) yank() {
	if err := e.clip(e.canvas.Text()); err != nil {
		slog.Warn("clipboard write failed", "error", err)
		e.setStatus("Clipboard copy failed", statusError)
		return
	}
	e.setStatus("Copied canvas to clipboard", statusSuccess)
}

func (e *Editor) handleMouse(ev input.Event) error {
	t := e.canvas.Transform(e.term)
	e.pointerCol, e.pointerRow, e.pointerOK = t.Hit(ev.X, ev.Y)

	switch ev.Mouse {
	case input.MouseLeftDown:
		e.stroking = false
		if e.panel.Click(e.surface, e.term, ev.X, ev.Y) {
			e.sound.PlayTool()
			break
		}
		if e.pointerOK {
			e.stroking = true
			e.apply(ev.X, ev.Y)
		}

	case input.MouseDragLeft:
		if e.stroking && e.panel.Active() != tool.Bucket {
			e.apply(ev.X, ev.Y)
		}

	case input.MouseLeftUp:
		e.stroking = false

	case input.MouseScrollUp, input.MouseScrollDown:
		if !e.panel.Contains(ev.X, ev.Y, e.term) {
			break
		}
		var moved bool
		if ev.Mouse == input.MouseScrollUp {
			moved = e.panel.ScrollUp(e.term)
		} else {
			moved = e.panel.ScrollDown(e.term)
		}
		if moved {
			e.panel.Draw(e.surface, e.term)
		}
	}

	return e.finish()
}

// apply runs the active tool at a screen point through a fresh transform
func (e *Editor) apply(x, y int) {
	tl := e.panel.Active()
	if !tl.Functional() {
		return
	}
	st, ok := e.canvas.Apply(e.surface, e.canvas.Transform(e.term), tl, e.panel.Brush(), x, y)
	if !ok || tl != tool.Bucket {
		return
	}
	slog.Debug("bucket fill", "col", st.Col, "row", st.Row, "cells", st.Cells)
	e.sound.PlayFill(st.Cells)
	e.setStatus(fmt.Sprintf("Filled %d cells", st.Cells), statusInfo)
}

// handleReload applies a config posted by the file watcher
// The buffer size is fixed for the session, other settings apply at once
func (e *Editor) handleReload(data any) {
	switch d := data.(type) {
	case *config.Config:
		palette, err := d.Palette()
		if err != nil {
			slog.Warn("reloaded palette rejected", "error", err)
			e.setStatus("Config palette invalid, kept previous", statusError)
			return
		}
		e.panel.SetPalette(palette)
		e.sound.SetVolume(d.Audio.Volume)

		b := e.canvas.Buffer()
		if d.Canvas.Columns != b.Cols() || d.Canvas.Rows != b.Rows() {
			e.setStatus("Config reloaded, canvas size applies on restart", statusInfo)
			return
		}
		e.setStatus("Config reloaded", statusSuccess)

	case error:
		slog.Warn("config reload failed", "error", d)
		e.setStatus("Config error, kept previous: "+d.Error(), statusError)
	}
}
