// pkg/fog/grid.go
package fog

import "math"

// Профиль растворения тумана: на расстоянии d/r = 0 туман стирается полностью,
// на InnerStop остаётся InnerErase, на краю круга ничего не меняется.
const (
	InnerStop  = 0.6
	InnerErase = 0.4
)

// Grid — туман войны на регулярной сетке. Плотность клетки лежит в [0, 1],
// 1 означает полностью скрытую клетку.
type Grid struct {
	cols, rows   int
	cellW, cellH float64
	density      []float64
}

// NewGrid covers a width x height canvas with cols x rows cells, all hidden.
func NewGrid(width, height float64, cols, rows int) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g := &Grid{
		cols:    cols,
		rows:    rows,
		cellW:   width / float64(cols),
		cellH:   height / float64(rows),
		density: make([]float64, cols*rows),
	}
	g.Reset()
	return g
}

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Reset hides every cell again.
func (g *Grid) Reset() {
	for i := range g.density {
		g.density[i] = 1
	}
}

// erase returns how much of the fog a reveal removes at relative distance t.
func erase(t float64) float64 {
	switch {
	case t <= 0:
		return 1
	case t < InnerStop:
		return 1 - (1-InnerErase)*t/InnerStop
	case t < 1:
		return InnerErase * (1 - t) / (1 - InnerStop)
	default:
		return 0
	}
}

// RevealArea thins the fog in a radial gradient around (x, y).
func (g *Grid) RevealArea(x, y, radius float64) {
	if radius <= 0 {
		return
	}
	c0 := max(0, int(math.Floor((x-radius)/g.cellW)))
	c1 := min(g.cols-1, int(math.Floor((x+radius)/g.cellW)))
	r0 := max(0, int(math.Floor((y-radius)/g.cellH)))
	r1 := min(g.rows-1, int(math.Floor((y+radius)/g.cellH)))

	for row := r0; row <= r1; row++ {
		cy := (float64(row) + 0.5) * g.cellH
		for col := c0; col <= c1; col++ {
			cx := (float64(col) + 0.5) * g.cellW
			e := erase(math.Hypot(cx-x, cy-y) / radius)
			if e <= 0 {
				continue
			}
			i := row*g.cols + col
			g.density[i] *= 1 - e
		}
	}
}

// Regrow lays a thin layer of fog with opacity rate over the whole grid.
func (g *Grid) Regrow(rate float64) {
	if rate <= 0 {
		return
	}
	rate = math.Min(rate, 1)
	for i, d := range g.density {
		g.density[i] = d + rate*(1-d)
	}
}

// Density returns the fog density of cell (col, row); cells outside the grid
// are fully hidden.
func (g *Grid) Density(col, row int) float64 {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return 1
	}
	return g.density[row*g.cols+col]
}

// At returns the fog density at canvas point (x, y).
func (g *Grid) At(x, y float64) float64 {
	return g.Density(int(math.Floor(x/g.cellW)), int(math.Floor(y/g.cellH)))
}
