// Package tool lists the drawing tools offered by the panel
package tool

// Tool identifies a panel tool
type Tool uint8

const (
	Select Tool = iota
	Move
	Rectangle
	Circle
	Brush
	Erase
	Bucket
	ColorPicker
	Text
)

// all is the panel order
var all = []Tool{Select, Move, Rectangle, Circle, Brush, Erase, Bucket, ColorPicker, Text}

var names = [...]string{
	Select:      "select",
	Move:        "move",
	Rectangle:   "rectangle",
	Circle:      "circle",
	Brush:       "brush",
	Erase:       "erase",
	Bucket:      "bucket",
	ColorPicker: "picker",
	Text:        "text",
}

// icons are three cells wide to fit a 5x3 button
var icons = [...]string{
	Select:      "[ ]",
	Move:        "<+>",
	Rectangle:   "[=]",
	Circle:      "(o)",
	Brush:       " # ",
	Erase:       " x ",
	Bucket:      "\\_/",
	ColorPicker: " ¿ ",
	Text:        " T ",
}

// All returns tools in panel order
func All() []Tool {
	out := make([]Tool, len(all))
	copy(out, all)
	return out
}

// Icon returns the three-cell button label
func (t Tool) Icon() string {
	if int(t) >= len(icons) {
		return " ? "
	}
	return icons[t]
}

func (t Tool) String() string {
	if int(t) >= len(names) {
		return "unknown"
	}
	return names[t]
}

// Functional reports whether the tool mutates the canvas
func (t Tool) Functional() bool {
	switch t {
	case Brush, Erase, Bucket:
		return true
	default:
		return false
	}
}
