package geom

// Corner is the screen corner a Point's offset is measured from
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// String returns human-readable corner name
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// fromRight reports whether the x offset is measured leftwards from the right edge
func (c Corner) fromRight() bool {
	return c == TopRight || c == BottomRight
}

// fromBottom reports whether the y offset is measured upwards from the bottom edge
func (c Corner) fromBottom() bool {
	return c == BottomLeft || c == BottomRight
}
