package costmap

import (
	"bufio"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/costgrid/grid"
)

// Map is a dense, immutable W×H table of cell costs.
type Map struct {
	Width, Height int

	costs []float64
}

// Cost returns the cost of (x,y); cells outside the map cost grid.DefaultCost.
// The method value m.Cost is a grid.CostFunc.
func (m *Map) Cost(x, y int) float64 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return grid.DefaultCost
	}
	return m.costs[y*m.Width+x]
}

// Grid builds a grid.Grid over the map.
func (m *Map) Grid() (*grid.Grid, error) {
	return grid.New(m.Width, m.Height, m.Cost)
}

// Random generates a w×h obstacle field. See the package documentation for
// the model.
// Complexity: O(W×H + n·maxSize²) time, O(W×H) memory.
func Random(w, h int, opts ...Option) (*Map, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyMap, w, h)
	}
	cfg := newRandomConfig(opts...)
	rng := rand.New(rand.NewSource(cfg.seed))

	m := &Map{Width: w, Height: h, costs: make([]float64, w*h)}
	for i := range m.costs {
		m.costs[i] = grid.DefaultCost
	}

	for i := 0; i < cfg.obstacles; i++ {
		xmin := rng.Intn(w)
		ymin := rng.Intn(h)
		xmax := rng.Intn(cfg.maxSize) + xmin + 1
		ymax := rng.Intn(cfg.maxSize) + ymin + 1

		c := grid.Impassable
		if rng.Float64() < cfg.crossable {
			c = crossableSpan*rng.Float64() + crossableMin
		}

		for y := ymin; y < ymax && y < h; y++ {
			for x := xmin; x < xmax && x < w; x++ {
				m.costs[y*w+x] = c
			}
		}
	}

	for _, xy := range cfg.clear {
		if xy[0] >= 0 && xy[0] < w && xy[1] >= 0 && xy[1] < h {
			m.costs[xy[1]*w+xy[0]] = grid.DefaultCost
		}
	}

	return m, nil
}

// FromRows copies a [y][x] table into a Map. Negative or NaN costs are
// rejected with ErrBadToken.
func FromRows(rows [][]float64) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	h, w := len(rows), len(rows[0])
	m := &Map{Width: w, Height: h, costs: make([]float64, 0, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedMap, y, len(row), w)
		}
		for x, c := range row {
			if !(c >= 0) {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %v", ErrBadToken, x, y, c)
			}
		}
		m.costs = append(m.costs, row...)
	}
	return m, nil
}

// Parse reads a text layout: one row per line, whitespace-separated cells,
// each a non-negative number or X for impassable.
func Parse(text string) (*Map, error) {
	var rows [][]float64
	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, tok := range fields {
			c, err := parseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, column %d: %q", ErrBadToken, line, i+1, tok)
			}
			row[i] = c
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("costmap: read: %w", err)
	}
	return FromRows(rows)
}

func parseToken(tok string) (float64, error) {
	switch tok {
	case "X", "x":
		return grid.Impassable, nil
	}
	c, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, err
	}
	if !(c >= 0) {
		return 0, strconv.ErrRange
	}
	return c, nil
}

// String renders the map in the format accepted by Parse.
func (m *Map) String() string {
	var sb strings.Builder
	for y := 0; y < m.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < m.Width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			c := m.costs[y*m.Width+x]
			if c == grid.Impassable {
				sb.WriteByte('X')
				continue
			}
			sb.WriteString(strconv.FormatFloat(c, 'f', -1, 64))
		}
	}
	return sb.String()
}
