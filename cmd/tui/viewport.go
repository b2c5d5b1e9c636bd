// cmd/tui/viewport.go
package main

import (
	"go-bastion-defense/internal/config"
	"go-bastion-defense/pkg/geom"
)

const sidebarCols = 36

// viewport maps the 800x600 battlefield onto a block of terminal cells.
type viewport struct {
	cols, rows int
}

func newViewport(width, height int) viewport {
	return viewport{
		cols: max(1, width-sidebarCols),
		rows: max(1, height-1),
	}
}

// toCell returns the terminal cell holding canvas point p.
func (v viewport) toCell(p geom.Position) (int, int) {
	col := int(p.X * float64(v.cols) / config.CanvasWidth)
	row := int(p.Y * float64(v.rows) / config.CanvasHeight)
	return col, row
}

// toCanvas returns the canvas point at the center of cell (col, row).
func (v viewport) toCanvas(col, row int) geom.Position {
	return geom.Position{
		X: (float64(col) + 0.5) * config.CanvasWidth / float64(v.cols),
		Y: (float64(row) + 0.5) * config.CanvasHeight / float64(v.rows),
	}
}

func (v viewport) contains(col, row int) bool {
	return col >= 0 && row >= 0 && col < v.cols && row < v.rows
}

// clamp keeps (col, row) inside the map area.
func (v viewport) clamp(col, row int) (int, int) {
	return min(max(col, 0), v.cols-1), min(max(row, 0), v.rows-1)
}
