// Package app runs the editor: layout, the input loop and dispatch to the
// canvas and panel components.
package app

import (
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"

	"github.com/lixenwraith/termpaint/canvas"
	"github.com/lixenwraith/termpaint/config"
	"github.com/lixenwraith/termpaint/geom"
	"github.com/lixenwraith/termpaint/input"
	"github.com/lixenwraith/termpaint/panel"
	"github.com/lixenwraith/termpaint/surface"
)

// Sounder plays feedback sounds, implemented by audio.SoundManager
type Sounder interface {
	PlayFill(cells int)
	PlayTool()
	SetVolume(v float64)
}

type nopSounder struct{}

func (nopSounder) PlayFill(int)      {}
func (nopSounder) PlayTool()         {}
func (nopSounder) SetVolume(float64) {}

// Option configures an Editor
type Option func(*Editor)

// WithSound enables feedback sounds
func WithSound(s Sounder) Option {
	return func(e *Editor) {
		if s != nil {
			e.sound = s
		}
	}
}

// WithClipboard replaces the system clipboard writer
func WithClipboard(write func(string) error) Option {
	return func(e *Editor) {
		e.clip = write
	}
}

// WithClock replaces the time source used for status expiry
func WithClock(now func() time.Time) Option {
	return func(e *Editor) {
		e.now = now
	}
}

// Editor owns all editor state, accessed only from the Run goroutine
type Editor struct {
	surface surface.Surface
	input   input.Source
	canvas  *canvas.Canvas
	panel   *panel.Panel
	sound   Sounder
	clip    func(string) error
	now     func() time.Time

	term    geom.Size
	running bool

	// Drags paint only when the press started on a canvas cell
	stroking bool

	pointerCol, pointerRow int
	pointerOK              bool

	statusMsg   string
	statusKind  statusKind
	statusTimer time.Time
}

// New builds an editor from a validated config
func New(s surface.Surface, src input.Source, cfg *config.Config, opts ...Option) (*Editor, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, errors.Wrap(err, "brush palette")
	}

	e := &Editor{
		surface: s,
		input:   src,
		canvas:  canvas.New(canvasFrame, cfg.Canvas.Columns, cfg.Canvas.Rows),
		panel:   panel.New(panelArea, palette),
		sound:   nopSounder{},
		clip:    clipboard.WriteAll,
		now:     time.Now,
		running: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Run draws the first frame and processes events until quit or input closes
// A failed flush aborts the loop and is returned
func (e *Editor) Run() error {
	e.term = e.surface.Size()
	if err := e.redraw(); err != nil {
		return errors.Wrap(err, "initial draw")
	}

	for e.running {
		ev := e.input.Next()
		e.expireStatus()

		var err error
		switch ev.Type {
		case input.EventClosed:
			slog.Debug("input closed")
			return nil

		case input.EventResize:
			e.term = geom.Size{W: ev.Width, H: ev.Height}
			err = e.redraw()

		case input.EventKey:
			err = e.handleKey(ev)

		case input.EventMouse:
			err = e.handleMouse(ev)

		case input.EventReload:
			e.handleReload(ev.Data)
			err = e.redraw()
		}

		if err != nil {
			return errors.Wrapf(err, "render after %s event", ev.Type)
		}
	}
	return nil
}

// redraw clears and renders every component
func (e *Editor) redraw() error {
	e.surface.Clear()
	e.canvas.Draw(e.surface, e.canvas.Transform(e.term))
	e.panel.Draw(e.surface, e.term)
	e.drawStatus()
	return e.surface.Flush()
}

// finish ends a partial update with the status line and a flush
func (e *Editor) finish() error {
	e.drawStatus()
	return e.surface.Flush()
}
