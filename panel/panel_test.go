package panel

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termpaint/geom"
	"github.com/lixenwraith/termpaint/surface"
	"github.com/lixenwraith/termpaint/tool"
)

var term = geom.Size{W: 40, H: 20}

var palette = []surface.Cell{
	{Rune: '#', Style: tcell.StyleDefault},
	{Rune: '@', Style: tcell.StyleDefault.Foreground(tcell.ColorRed)},
	{Rune: '.', Style: tcell.StyleDefault.Foreground(tcell.ColorBlue)},
}

// newPanel returns a 7x12 panel at (30,0): four visible buttons at x=31, y=0,3,6,9
// The first layout scrolls Brush (index 4) into view, so Move..Brush are shown
func newPanel() *Panel {
	area := geom.NewArea(geom.NewPoint(30, 0, geom.TopLeft), geom.NewPoint(36, 11, geom.TopLeft))
	return New(area, palette)
}

func TestNewDefaults(t *testing.T) {
	p := newPanel()
	assert.Equal(t, tool.Brush, p.Active())
	assert.Equal(t, palette[0], p.Brush())
	assert.Equal(t, 0, p.Offset())
}

func TestDrawVisibleButtons(t *testing.T) {
	p := newPanel()
	p.SelectIndex(1)
	r := surface.NewRecorder(term.W, term.H)
	p.Draw(r, term)

	assert.Equal(t, '╭', r.At(31, 0).Rune)
	assert.Equal(t, '╯', r.At(35, 2).Rune)
	assert.Equal(t, tool.Select.Icon(), string([]rune(r.Row(1))[32:35]))
	assert.Equal(t, tool.Circle.Icon(), string([]rune(r.Row(10))[32:35]))
	assert.Equal(t, ' ', r.At(31, 12).Rune, "fifth button not drawn")

	assert.Equal(t, tcell.StyleDefault.Reverse(true), r.At(31, 3).Style, "active button reversed")
	assert.Equal(t, tcell.StyleDefault, r.At(31, 0).Style)
}

func TestDrawDimsInertTools(t *testing.T) {
	p := newPanel()
	r := surface.NewRecorder(term.W, term.H)
	p.Draw(r, term)

	// Offset 1 keeps Brush on screen: Move, Rectangle, Circle, Brush
	assert.Equal(t, tool.Brush.Icon(), string([]rune(r.Row(10))[32:35]))
	assert.Equal(t, tcell.StyleDefault.Reverse(true), r.At(32, 10).Style, "active functional tool not dimmed")
	assert.Equal(t, tcell.StyleDefault.Dim(true), r.At(32, 1).Style, "inert tool dimmed")
	assert.Equal(t, tcell.StyleDefault, r.At(31, 0).Style, "border not dimmed")

	p.Select(tool.Rectangle)
	r.Reset()
	p.Draw(r, term)
	assert.Equal(t, tcell.StyleDefault.Reverse(true).Dim(true), r.At(32, 4).Style)
	assert.Equal(t, tcell.StyleDefault.Reverse(true), r.At(31, 3).Style)
}

func TestClick(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		ok   bool
		want tool.Tool
	}{
		{"first button", 31, 0, true, tool.Move},
		{"second button middle", 33, 4, true, tool.Rectangle},
		{"last visible button", 35, 11, true, tool.Brush},
		{"panel gap column", 30, 4, false, tool.Brush},
		{"right gap column", 36, 4, false, tool.Brush},
		{"below panel", 31, 12, false, tool.Brush},
		{"outside panel", 5, 5, false, tool.Brush},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPanel()
			r := surface.NewRecorder(term.W, term.H)
			ok := p.Click(r, term, tt.x, tt.y)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, p.Active())
			if !tt.ok {
				assert.Empty(t, r.Writes())
			}
		})
	}
}

func TestScrollClamps(t *testing.T) {
	p := newPanel()

	assert.True(t, p.ScrollUp(term))
	assert.False(t, p.ScrollUp(term), "floor at 0")
	assert.Equal(t, 0, p.Offset())

	for i := 0; i < 10; i++ {
		p.ScrollDown(term)
	}
	assert.Equal(t, 5, p.Offset(), "ceiling at total-visible")
	assert.False(t, p.ScrollDown(term))

	r := surface.NewRecorder(term.W, term.H)
	require.True(t, p.Click(r, term, 31, 1))
	assert.Equal(t, tool.Erase, p.Active())

	for i := 0; i < 10; i++ {
		p.ScrollUp(term)
	}
	assert.Equal(t, 0, p.Offset())
}

func TestScrollWhenEverythingFits(t *testing.T) {
	area := geom.NewArea(geom.NewPoint(6, 0, geom.TopRight), geom.NewPoint(0, 0, geom.BottomRight))
	p := New(area, palette)
	tall := geom.Size{W: 40, H: 40}

	assert.False(t, p.ScrollDown(tall))
	assert.Equal(t, 0, p.Offset())
}

func TestTooSmallPanel(t *testing.T) {
	area := geom.NewArea(geom.NewPoint(30, 0, geom.TopLeft), geom.NewPoint(36, 1, geom.TopLeft))
	p := New(area, palette)
	r := surface.NewRecorder(term.W, term.H)

	p.Draw(r, term)
	assert.Empty(t, r.Writes())
	assert.False(t, p.Click(r, term, 31, 0))
	assert.False(t, p.ScrollDown(term))
}

func TestSelectKeepsActiveVisible(t *testing.T) {
	p := newPanel()
	r := surface.NewRecorder(term.W, term.H)
	p.Draw(r, term)

	require.True(t, p.Select(tool.Text))
	assert.Equal(t, tool.Text, p.Active())
	assert.Equal(t, 5, p.Offset())

	require.True(t, p.SelectIndex(0))
	assert.Equal(t, 0, p.Offset())

	assert.False(t, p.SelectIndex(9))
	assert.False(t, p.SelectIndex(-1))
	assert.Equal(t, tool.Select, p.Active())
}

func TestBrushPalette(t *testing.T) {
	p := newPanel()

	p.PrevBrush()
	assert.Equal(t, palette[2], p.Brush(), "wraps backwards")
	p.NextBrush()
	assert.Equal(t, palette[0], p.Brush(), "wraps forwards")
	p.NextBrush()
	assert.Equal(t, palette[1], p.Brush())

	p.SetPalette(palette[:1])
	assert.Equal(t, palette[0], p.Brush(), "index reset when out of range")

	p.SetPalette(nil)
	p.NextBrush()
	assert.Equal(t, '#', p.Brush().Rune)
}

func TestClampScroll(t *testing.T) {
	tests := []struct {
		name                   string
		scroll, visible, total int
		want                   int
	}{
		{"fits", 3, 9, 9, 0},
		{"negative", -2, 3, 9, 0},
		{"in range", 2, 3, 9, 2},
		{"past end", 8, 3, 9, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampScroll(tt.scroll, tt.visible, tt.total))
		})
	}
}
