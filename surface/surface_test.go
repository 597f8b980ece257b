package surface

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termpaint/constants"
	"github.com/lixenwraith/termpaint/geom"
)

func newSim(t *testing.T, w, h int) (*Tcell, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewTcell(sim)
	require.NoError(t, s.Open())
	sim.SetSize(w, h)
	return s, sim
}

func simRune(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return 0
	}
	return c.Runes[0]
}

func TestTcellWritesVisibleAfterFlush(t *testing.T) {
	s, sim := newSim(t, 10, 4)
	defer s.Close()

	s.MoveAndWrite(2, 1, Cell{Rune: 'a', Style: tcell.StyleDefault})
	s.WriteAtCursor(Cell{Rune: 'b', Style: tcell.StyleDefault})
	s.WriteAtCursor(Cell{Rune: 'c', Style: tcell.StyleDefault})
	require.NoError(t, s.Flush())

	assert.Equal(t, 'a', simRune(sim, 2, 1))
	assert.Equal(t, 'b', simRune(sim, 3, 1))
	assert.Equal(t, 'c', simRune(sim, 4, 1))
	assert.Equal(t, geom.Size{W: 10, H: 4}, s.Size())
}

func TestTcellFlushAfterClose(t *testing.T) {
	s, _ := newSim(t, 5, 5)
	s.Close()
	s.Close()
	assert.ErrorIs(t, s.Flush(), ErrClosed)
}

func TestTcellCloseDrainsInput(t *testing.T) {
	tests := []struct {
		name   string
		inject int
	}{
		{name: "idle", inject: 0},
		{name: "queued keys", inject: 3},
		{name: "queue near capacity", inject: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, sim := newSim(t, 5, 5)
			for i := 0; i < tt.inject; i++ {
				sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
			}
			require.Equal(t, tt.inject > 0, sim.HasPendingEvent())

			start := time.Now()
			s.Close()
			elapsed := time.Since(start)

			assert.Equal(t, tt.inject, s.drained)
			assert.Less(t, elapsed, 3*constants.DrainPollInterval)
		})
	}
}

func TestTcellAttributeApplied(t *testing.T) {
	s, sim := newSim(t, 5, 2)
	defer s.Close()

	s.SetAttribute(AttrReverse)
	s.MoveAndWrite(0, 0, Cell{Rune: 'x', Style: tcell.StyleDefault})
	s.SetAttribute(AttrNone)
	s.MoveAndWrite(1, 0, Cell{Rune: 'y', Style: tcell.StyleDefault})
	require.NoError(t, s.Flush())

	cells, _, _ := sim.GetContents()
	assert.Equal(t, tcell.StyleDefault.Reverse(true), cells[0].Style)
	assert.Equal(t, tcell.StyleDefault, cells[1].Style)
}

func TestDrawBoxGlyphs(t *testing.T) {
	tests := []struct {
		name string
		line LineType
		tl   rune
		h    rune
		v    rune
		br   rune
	}{
		{"single", LineSingle, '┌', '─', '│', '┘'},
		{"double", LineDouble, '╔', '═', '║', '╝'},
		{"dashed", LineDashed, '┌', '┄', '┆', '┘'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecorder(6, 4)
			r.DrawBox(1, 0, 4, 3, tt.line, tcell.StyleDefault)

			assert.Equal(t, tt.tl, r.At(1, 0).Rune)
			assert.Equal(t, tt.h, r.At(2, 0).Rune)
			assert.Equal(t, tt.v, r.At(4, 1).Rune)
			assert.Equal(t, tt.br, r.At(4, 2).Rune)
			assert.Equal(t, ' ', r.At(2, 1).Rune, "interior untouched")
		})
	}
}

func TestDrawBoxTooSmall(t *testing.T) {
	r := NewRecorder(4, 4)
	r.DrawBox(0, 0, 1, 3, LineSingle, tcell.StyleDefault)
	r.DrawDashedBox(0, 0, 3, 1, tcell.StyleDefault)
	assert.Empty(t, r.Writes())
}

func TestRecorderLogAndGrid(t *testing.T) {
	r := NewRecorder(3, 2)
	r.WriteString(0, 1, "hey", tcell.StyleDefault)
	r.MoveAndWrite(9, 9, Cell{Rune: 'z'})

	assert.Equal(t, "hey", r.Row(1))
	assert.Len(t, r.Writes(), 4, "out of range writes are still logged")

	require.NoError(t, r.Flush())
	assert.Equal(t, 1, r.Flushes())

	r.Reset()
	assert.Empty(t, r.Writes())
	assert.Equal(t, "hey", r.Row(1))

	r.Clear()
	assert.Equal(t, "   ", r.Row(1))

	r.Close()
	assert.ErrorIs(t, r.Flush(), ErrClosed)
}
