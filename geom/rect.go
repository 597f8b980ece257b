package geom

// Rect is a resolved absolute rectangle, origin top-left, zero-based
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Dimensions, zero when degenerate
}

// Empty returns true if the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the X coordinate one past the right edge
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the Y coordinate one past the bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains checks if a point is within the rectangle
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns a rectangle shrunk by n cells on all sides, clamped to zero size
func (r Rect) Inset(n int) Rect {
	w := r.W - 2*n
	h := r.H - 2*n
	if w <= 0 || h <= 0 {
		return Rect{X: r.X + n, Y: r.Y + n}
	}
	return Rect{X: r.X + n, Y: r.Y + n, W: w, H: h}
}

// Size returns the rectangle dimensions
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}
