// internal/ui/castle_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	CastleCols          = 10
	CastleRows          = 2
	CastleCircleRadius  = 6.0
	CastleCircleSpacing = 3.0
)

// CastleIndicator отображает целостность крепости сеткой кружков,
// каждый кружок — 5 %.
type CastleIndicator struct {
	X, Y float32
}

func NewCastleIndicator(x, y float32) *CastleIndicator {
	return &CastleIndicator{X: x, Y: y}
}

// Draw рисует индикатор. lives — проценты 0..100.
func (i *CastleIndicator) Draw(screen *ebiten.Image, lives int) {
	total := CastleCols * CastleRows
	filled := (lives*total + 99) / 100
	step := float32(CastleCircleRadius*2 + CastleCircleSpacing)

	for j := 0; j < total; j++ {
		row := j / CastleCols
		col := j % CastleCols
		cx := i.X + float32(col)*step + CastleCircleRadius
		cy := i.Y + 16 + float32(row)*step + CastleCircleRadius

		var c color.Color = color.Black
		if j < filled {
			c = config.HealthFullColor
			if lives <= defs.GameOverLives*4 {
				c = config.DangerColor
			}
		}
		vector.DrawFilledCircle(screen, cx, cy, CastleCircleRadius, c, true)
		vector.StrokeCircle(screen, cx, cy, CastleCircleRadius, 1, color.White, true)
	}

	DrawText(screen, fmt.Sprintf("Integrity %d%%", lives), int(i.X), int(i.Y), config.TextLightColor)
}

// Height returns the total height of the indicator.
func (i *CastleIndicator) Height() int {
	return 16 + CastleRows*int(CastleCircleRadius*2+CastleCircleSpacing)
}
