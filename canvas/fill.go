package canvas

// neighbours are the 4-connected step offsets
var neighbours = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// FloodFill stamps cell over the 4-connected region of cells equal to the
// cell at (col, row) and returns the number of cells stamped.
// Each coordinate is visited at most once per fill, so a fill with the
// region's own value still terminates.
func (b *Buffer) FloodFill(col, row int, cell Cell) int {
	target := b.At(col, row)

	visited := make([]bool, len(b.cells))
	stack := [][2]int{{col, row}}
	filled := 0

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Bounds first, on signed coordinates
		if !b.inBounds(p[0], p[1]) {
			continue
		}
		idx := p[1]*b.cols + p[0]
		if visited[idx] {
			continue
		}
		visited[idx] = true
		if b.cells[idx] != target {
			continue
		}

		b.cells[idx] = cell
		filled++

		for _, d := range neighbours {
			stack = append(stack, [2]int{p[0] + d[0], p[1] + d[1]})
		}
	}

	return filled
}
