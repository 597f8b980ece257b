package surface

import "github.com/gdamore/tcell/v2"

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineDashed                  // ┌┄┐┆└┘
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineDashed:  {'┌', '┄', '┐', '┆', '└', '┘'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// drawBox renders a box outline through a single-cell writer
// Boxes smaller than 2x2 are skipped
func drawBox(put func(x, y int, c Cell), x, y, w, h int, line LineType, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]
	right, bottom := x+w-1, y+h-1

	put(x, y, Cell{Rune: chars[boxTL], Style: style})
	for i := x + 1; i < right; i++ {
		put(i, y, Cell{Rune: chars[boxH], Style: style})
	}
	put(right, y, Cell{Rune: chars[boxTR], Style: style})

	for j := y + 1; j < bottom; j++ {
		put(x, j, Cell{Rune: chars[boxV], Style: style})
		put(right, j, Cell{Rune: chars[boxV], Style: style})
	}

	put(x, bottom, Cell{Rune: chars[boxBL], Style: style})
	for i := x + 1; i < right; i++ {
		put(i, bottom, Cell{Rune: chars[boxH], Style: style})
	}
	put(right, bottom, Cell{Rune: chars[boxBR], Style: style})
}
