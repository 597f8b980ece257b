package canvas

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/termpaint/surface"
)

// Cell is a single styled buffer cell
type Cell = surface.Cell

// Blank is the default empty cell
var Blank = surface.Blank

// Buffer is a fixed-size grid of cells, never resized after construction
type Buffer struct {
	cols  int
	rows  int
	cells []Cell // row-major
}

// NewBuffer creates a blank buffer, negative dimensions clamp to zero
func NewBuffer(cols, rows int) *Buffer {
	cols, rows = max(cols, 0), max(rows, 0)
	b := &Buffer{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
	b.Clear()
	return b
}

// Cols returns the buffer width
func (b *Buffer) Cols() int {
	return b.cols
}

// Rows returns the buffer height
func (b *Buffer) Rows() int {
	return b.rows
}

func (b *Buffer) inBounds(col, row int) bool {
	return col >= 0 && col < b.cols && row >= 0 && row < b.rows
}

// mustIndex converts indices to a flat offset
// Out of range indices are a caller defect and panic
func (b *Buffer) mustIndex(col, row int) int {
	if !b.inBounds(col, row) {
		panic(fmt.Sprintf("canvas: cell (%d,%d) out of range %dx%d", col, row, b.cols, b.rows))
	}
	return row*b.cols + col
}

// At returns the cell at the given indices
func (b *Buffer) At(col, row int) Cell {
	return b.cells[b.mustIndex(col, row)]
}

// Paint sets a single cell
func (b *Buffer) Paint(col, row int, cell Cell) {
	b.cells[b.mustIndex(col, row)] = cell
}

// Erase resets a single cell to blank
func (b *Buffer) Erase(col, row int) {
	b.Paint(col, row, Blank)
}

// Clear resets every cell to blank
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Blank
	}
}

// Text returns the buffer runes, one line per row, trailing blanks trimmed
func (b *Buffer) Text() string {
	var sb strings.Builder
	line := make([]rune, b.cols)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			line[c] = b.cells[r*b.cols+c].Rune
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}
