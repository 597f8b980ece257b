package geom

// Area is a rectangle defined by two corner-relative points
// Immutable: re-resolved against each new terminal size, never mutated
type Area struct {
	Start, End Point
}

// NewArea creates an area spanning start to end inclusive
func NewArea(start, end Point) Area {
	return Area{Start: start, End: end}
}

// Resolve returns the absolute rectangle for the terminal size
// Degenerate areas (start beyond end, or empty terminal) have zero size at the resolved start
func (a Area) Resolve(term Size) Rect {
	sx, sy := a.Start.Resolve(term)
	if term.Empty() {
		return Rect{X: sx, Y: sy}
	}
	ex, ey := a.End.Resolve(term)
	if sx > ex || sy > ey {
		return Rect{X: sx, Y: sy}
	}
	return Rect{X: sx, Y: sy, W: ex - sx + 1, H: ey - sy + 1}
}

// Size returns absolute width and height, (0, 0) when degenerate
func (a Area) Size(term Size) (w, h int) {
	r := a.Resolve(term)
	return r.W, r.H
}

// Contains tests absolute point membership, always false when degenerate
func (a Area) Contains(x, y int, term Size) bool {
	return a.Resolve(term).Contains(x, y)
}
