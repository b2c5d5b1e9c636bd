// internal/ui/font.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face — моноширинный шрифт всего интерфейса.
var Face font.Face = basicfont.Face7x13

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(dst, s, Face, x, y+Face.Metrics().Ascent.Ceil(), c)
}

// DrawCenteredText draws s centered on (x, y).
func DrawCenteredText(dst *ebiten.Image, s string, x, y int, c color.Color) {
	b := text.BoundString(Face, s)
	text.Draw(dst, s, Face, x-b.Dx()/2, y-b.Min.Y-b.Dy()/2, c)
}

// DrawOutlinedText рисует текст с обводкой, центрируя его по x.
func DrawOutlinedText(dst *ebiten.Image, s string, x, y, thickness int, fill, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawCenteredText(dst, s, x+dx, y+dy, outline)
		}
	}
	DrawCenteredText(dst, s, x, y, fill)
}

// TextWidth returns the rendered width of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(Face, s).Ceil()
}
