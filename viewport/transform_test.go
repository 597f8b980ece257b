package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termpaint/geom"
)

func TestComputeLayouts(t *testing.T) {
	tests := []struct {
		name        string
		view        geom.Rect
		content     geom.Size
		wantVisible geom.Size
		wantStartX  int
		wantStartY  int
		wantDX      int
		wantDY      int
	}{
		{
			name:        "Buffer larger than viewport anchors at viewport start",
			view:        geom.Rect{X: 0, Y: 0, W: 10, H: 5},
			content:     geom.Size{W: 50, H: 20},
			wantVisible: geom.Size{W: 10, H: 5},
			wantStartX:  0,
			wantStartY:  0,
			wantDX:      20,
			wantDY:      7,
		},
		{
			name:        "Buffer smaller than viewport is centered",
			view:        geom.Rect{X: 0, Y: 0, W: 50, H: 20},
			content:     geom.Size{W: 10, H: 5},
			wantVisible: geom.Size{W: 10, H: 5},
			wantStartX:  20,
			wantStartY:  7,
			wantDX:      -20,
			wantDY:      -7,
		},
		{
			name:        "Odd difference truncates toward zero",
			view:        geom.Rect{X: 0, Y: 0, W: 50, H: 20},
			content:     geom.Size{W: 9, H: 20},
			wantVisible: geom.Size{W: 9, H: 20},
			wantStartX:  20,
			wantStartY:  0,
			wantDX:      -20,
			wantDY:      0,
		},
		{
			name:        "Offset viewport origin",
			view:        geom.Rect{X: 3, Y: 2, W: 20, H: 10},
			content:     geom.Size{W: 10, H: 30},
			wantVisible: geom.Size{W: 10, H: 10},
			wantStartX:  8,
			wantStartY:  2,
			wantDX:      -8,
			wantDY:      8,
		},
		{
			name:        "Exact fit",
			view:        geom.Rect{X: 1, Y: 1, W: 8, H: 4},
			content:     geom.Size{W: 8, H: 4},
			wantVisible: geom.Size{W: 8, H: 4},
			wantStartX:  1,
			wantStartY:  1,
			wantDX:      -1,
			wantDY:      -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := ComputeRect(tt.view, tt.content)
			assert.Equal(t, tt.wantVisible, tr.Visible, "visible")
			assert.Equal(t, tt.wantStartX, tr.StartX, "start x")
			assert.Equal(t, tt.wantStartY, tr.StartY, "start y")
			assert.Equal(t, tt.wantDX, tr.DX, "offset x")
			assert.Equal(t, tt.wantDY, tr.DY, "offset y")
		})
	}
}

func TestComputeFromArea(t *testing.T) {
	area := geom.NewArea(geom.NewPoint(0, 0, geom.TopLeft), geom.NewPoint(0, 0, geom.BottomRight))
	tr := Compute(area, geom.Size{W: 50, H: 20}, geom.Size{W: 10, H: 5})

	assert.Equal(t, geom.Rect{X: 0, Y: 0, W: 50, H: 20}, tr.Viewport)
	assert.Equal(t, 20, tr.StartX)
	assert.Equal(t, 7, tr.StartY)
}

func TestToBufferMargins(t *testing.T) {
	tr := ComputeRect(geom.Rect{X: 0, Y: 0, W: 50, H: 20}, geom.Size{W: 10, H: 5})

	col, row, ok := tr.ToBuffer(20, 7)
	require.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)

	col, row, ok = tr.ToBuffer(29, 11)
	require.True(t, ok)
	assert.Equal(t, 9, col)
	assert.Equal(t, 4, row)

	// Inside the viewport but in the margin around the buffer
	for _, p := range [][2]int{{19, 7}, {30, 7}, {20, 6}, {20, 12}, {0, 0}, {49, 19}} {
		_, _, ok := tr.ToBuffer(p[0], p[1])
		assert.False(t, ok, "margin point %v", p)
		_, _, ok = tr.Hit(p[0], p[1])
		assert.False(t, ok, "margin point %v", p)
	}
}

func TestHitRejectsOutsideViewport(t *testing.T) {
	// Oversized buffer: ToBuffer alone would accept the border column
	tr := ComputeRect(geom.Rect{X: 1, Y: 1, W: 10, H: 5}, geom.Size{W: 50, H: 20})

	_, _, ok := tr.ToBuffer(0, 1)
	assert.True(t, ok)

	_, _, ok = tr.Hit(0, 1)
	assert.False(t, ok)

	col, row, ok := tr.Hit(1, 1)
	require.True(t, ok)
	assert.Equal(t, 20, col)
	assert.Equal(t, 7, row)
}

// Every visible screen coordinate maps into the buffer and back onto itself
func TestRoundTripStaysVisible(t *testing.T) {
	views := []geom.Rect{
		{X: 0, Y: 0, W: 10, H: 5},
		{X: 4, Y: 2, W: 33, H: 11},
		{X: 7, Y: 0, W: 1, H: 1},
	}
	contents := []geom.Size{{W: 50, H: 20}, {W: 9, H: 3}, {W: 10, H: 5}, {W: 1, H: 40}}

	for _, view := range views {
		for _, content := range contents {
			tr := ComputeRect(view, content)
			vis := tr.VisibleRect()
			require.True(t, view.Contains(vis.X, vis.Y) || vis.Empty(), "visible region starts inside viewport")

			for y := vis.Y; y < vis.Bottom(); y++ {
				for x := vis.X; x < vis.Right(); x++ {
					col, row, ok := tr.ToBuffer(x, y)
					require.True(t, ok, "view %+v content %v point (%d, %d)", view, content, x, y)
					sx, sy, ok := tr.ToScreen(col, row)
					require.True(t, ok)
					assert.Equal(t, x, sx)
					assert.Equal(t, y, sy)
					assert.True(t, view.Contains(sx, sy))
				}
			}
		}
	}
}

func TestRowSpan(t *testing.T) {
	tr := ComputeRect(geom.Rect{X: 2, Y: 1, W: 6, H: 3}, geom.Size{W: 10, H: 2})

	screenY, bufRow, colStart, ok := tr.RowSpan(0)
	require.True(t, ok)
	assert.Equal(t, 1, screenY)
	assert.Equal(t, 0, bufRow)
	assert.Equal(t, 2, colStart)

	screenY, bufRow, _, ok = tr.RowSpan(1)
	require.True(t, ok)
	assert.Equal(t, 2, screenY)
	assert.Equal(t, 1, bufRow)

	_, _, _, ok = tr.RowSpan(2)
	assert.False(t, ok)
}

func TestDegenerateViewport(t *testing.T) {
	tr := ComputeRect(geom.Rect{X: 5, Y: 5}, geom.Size{W: 10, H: 5})
	assert.Equal(t, geom.Size{W: 0, H: 0}, tr.Visible)

	_, _, ok := tr.Hit(5, 5)
	assert.False(t, ok)

	_, _, _, ok = tr.RowSpan(0)
	assert.False(t, ok)
}
