// pkg/render/color.go
package render

import (
	"image/color"

	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade returns c with its alpha scaled by a in [0, 1].
func Fade(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.RGBA{c.R, c.G, c.B, uint8(float64(c.A) * a)}
}

// HealthColor blends from the low to the full health color.
func HealthColor(ratio float64) color.RGBA {
	return utils.LerpColor(config.HealthLowColor, config.HealthFullColor, ratio)
}

// paintVertices задаёт всем вершинам один цвет.
func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
