package grid

import (
	"math"
	"strconv"
	"strings"
)

// Field widths of the text renderings.
const (
	costFieldWidth  = 2
	stateFieldWidth = 5
)

// render lays cells out row by row, right-aligning fn(cell) in fields of
// the given width. The first character of each row is dropped so that a
// width-2 rendering of single digits reads "1 1 1".
func (g *Grid) render(width int, fn func(idx int, c *Cell) string) string {
	var sb strings.Builder
	var row strings.Builder
	for y := 0; y < g.Height; y++ {
		row.Reset()
		for x := 0; x < g.Width; x++ {
			idx := g.Index(x, y)
			s := fn(idx, &g.cells[idx])
			if pad := width - len(s); pad > 0 {
				row.WriteString(strings.Repeat(" ", pad))
			}
			row.WriteString(s)
		}
		line := row.String()
		if len(line) > 0 {
			line = line[1:]
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
	}

	return sb.String()
}

// CostToGoString renders the static cost map: each cost rounded to an
// integer, X for impassable cells.
func (g *Grid) CostToGoString() string {
	return g.render(costFieldWidth, func(_ int, c *Cell) string {
		if !c.Passable() {
			return "X"
		}
		return strconv.FormatFloat(math.RoundToEven(c.CostToGo), 'f', 0, 64)
	})
}

// AccumulatedString renders the accumulated cost of every cell, ? for
// cells the last search never reached.
func (g *Grid) AccumulatedString() string {
	return g.render(stateFieldWidth, func(_ int, c *Cell) string {
		if !c.Reached() {
			return "?"
		}
		return strconv.FormatFloat(c.Cost, 'f', -1, 64)
	})
}

// PathString renders the position of each cell within path, X for cells
// off the path.
func (g *Grid) PathString(path Path) string {
	pos := make(map[int]int, len(path))
	for i := len(path) - 1; i >= 0; i-- {
		pos[g.Index(path[i].X, path[i].Y)] = i
	}
	return g.render(stateFieldWidth, func(idx int, _ *Cell) string {
		if i, ok := pos[idx]; ok {
			return strconv.Itoa(i)
		}
		return "X"
	})
}
