package geom

// Size is a width/height pair, used for terminal and content dimensions
type Size struct {
	W, H int
}

// Empty returns true if either dimension is zero or negative
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Point is a coordinate relative to one of the four screen corners
// Resolved to absolute coordinates only against a terminal size
type Point struct {
	X, Y   int
	Corner Corner
}

// NewPoint creates a corner-relative point, negative offsets clamp to 0
func NewPoint(x, y int, corner Corner) Point {
	return Point{X: max(x, 0), Y: max(y, 0), Corner: corner}
}

// Resolve returns absolute screen coordinates for the given terminal size
// Never underflows and never exceeds term-1 on either axis
func (p Point) Resolve(term Size) (x, y int) {
	if term.Empty() {
		return 0, 0
	}
	maxX, maxY := term.W-1, term.H-1

	if p.Corner.fromRight() {
		x = DiffOrZero(maxX, p.X)
	} else {
		x = min(p.X, maxX)
	}

	if p.Corner.fromBottom() {
		y = DiffOrZero(maxY, p.Y)
	} else {
		y = min(p.Y, maxY)
	}

	return x, y
}

// DiffOrZero returns a-b, or 0 when b exceeds a
func DiffOrZero(a, b int) int {
	if a > b {
		return a - b
	}
	return 0
}
