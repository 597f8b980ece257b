// Package panel implements the tool selection side panel
package panel

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termpaint/constants"
	"github.com/lixenwraith/termpaint/geom"
	"github.com/lixenwraith/termpaint/surface"
	"github.com/lixenwraith/termpaint/tool"
)

// Panel owns tool selection state and the brush palette
type Panel struct {
	Area  geom.Area
	Style tcell.Style

	tools   []tool.Tool
	active  int
	palette []surface.Cell
	brush   int
	scroll  ScrollState
}

// New creates a panel with every tool listed and Brush active
func New(area geom.Area, palette []surface.Cell) *Panel {
	p := &Panel{
		Area:  area,
		Style: tcell.StyleDefault,
		tools: tool.All(),
	}
	p.scroll.Total = len(p.tools)
	p.Select(tool.Brush)
	p.SetPalette(palette)
	return p
}

// Active returns the selected tool
func (p *Panel) Active() tool.Tool {
	return p.tools[p.active]
}

// Brush returns the current brush cell
func (p *Panel) Brush() surface.Cell {
	if len(p.palette) == 0 {
		return surface.Cell{Rune: constants.DefaultBrushGlyph, Style: tcell.StyleDefault}
	}
	return p.palette[p.brush]
}

// SetPalette replaces the brush palette, keeping the index when still valid
func (p *Panel) SetPalette(palette []surface.Cell) {
	p.palette = append([]surface.Cell(nil), palette...)
	if p.brush >= len(p.palette) {
		p.brush = 0
	}
}

// NextBrush advances to the next palette entry, wrapping
func (p *Panel) NextBrush() {
	if n := len(p.palette); n > 0 {
		p.brush = (p.brush + 1) % n
	}
}

// PrevBrush steps back to the previous palette entry, wrapping
func (p *Panel) PrevBrush() {
	if n := len(p.palette); n > 0 {
		p.brush = (p.brush - 1 + n) % n
	}
}

// Select activates the given tool, returns false if it is not listed
func (p *Panel) Select(t tool.Tool) bool {
	for i, tl := range p.tools {
		if tl == t {
			return p.SelectIndex(i)
		}
	}
	return false
}

// SelectIndex activates the tool at list position i
func (p *Panel) SelectIndex(i int) bool {
	if i < 0 || i >= len(p.tools) {
		return false
	}
	p.active = i
	p.scroll.EnsureVisible(i)
	return true
}

// layout resolves the panel and refreshes the visible button count
// The active button is scrolled into view whenever buttons first become visible
func (p *Panel) layout(term geom.Size) geom.Rect {
	r := p.Area.Resolve(term)
	visible := 0
	if r.W >= constants.ButtonWidth {
		visible = min(r.H/constants.ButtonHeight, len(p.tools))
	}
	hidden := p.scroll.Visible == 0
	p.scroll.SetVisible(visible)
	if hidden {
		p.scroll.EnsureVisible(p.active)
	}
	return r
}

// buttonX returns the left column of every button, centered in the panel
func buttonX(r geom.Rect) int {
	return r.X + (r.W-constants.ButtonWidth)/2
}

// Draw renders visible buttons, the active one in reverse video
func (p *Panel) Draw(s surface.Surface, term geom.Size) {
	r := p.layout(term)
	x := buttonX(r)
	for k := 0; k < p.scroll.Visible; k++ {
		idx := p.scroll.Offset + k
		y := r.Y + k*constants.ButtonHeight

		attr := surface.AttrNone
		if idx == p.active {
			attr = surface.AttrReverse
		}
		s.SetAttribute(attr)
		s.DrawBox(x, y, constants.ButtonWidth, constants.ButtonHeight, surface.LineRounded, p.Style)

		// Placeholder tools are drawn dimmed
		if !p.tools[idx].Functional() {
			attr |= surface.AttrDim
		}
		s.SetAttribute(attr)
		s.WriteString(x+1, y+1, p.tools[idx].Icon(), p.Style)
		s.SetAttribute(surface.AttrNone)
	}
}

// Click selects the button under (x, y) and redraws the panel
// Returns false when the point is not on a visible button
func (p *Panel) Click(s surface.Surface, term geom.Size, x, y int) bool {
	r := p.layout(term)
	if !r.Contains(x, y) {
		return false
	}
	bx := buttonX(r)
	if x < bx || x >= bx+constants.ButtonWidth {
		return false
	}
	k := (y - r.Y) / constants.ButtonHeight
	if k >= p.scroll.Visible {
		return false
	}
	p.SelectIndex(p.scroll.Offset + k)
	p.Draw(s, term)
	return true
}

// ScrollUp moves the list one button up, floors at 0
func (p *Panel) ScrollUp(term geom.Size) bool {
	p.layout(term)
	return p.scroll.ScrollBy(-1)
}

// ScrollDown moves the list one button down, ceils at total-visible
func (p *Panel) ScrollDown(term geom.Size) bool {
	p.layout(term)
	return p.scroll.ScrollBy(1)
}

// Offset returns the index of the first visible button
func (p *Panel) Offset() int {
	return p.scroll.Offset
}

// Contains reports whether (x, y) lies inside the panel
func (p *Panel) Contains(x, y int, term geom.Size) bool {
	return p.Area.Contains(x, y, term)
}
