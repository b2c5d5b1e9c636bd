// internal/ui/advisor_panel.go
package ui

import (
	"image/color"

	"go-bastion-defense/internal/advisor"
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// AdvisorPanel prints the advisor log, newest entry first.
type AdvisorPanel struct {
	X, Y, Width, Height int
}

func NewAdvisorPanel(x, y, width, height int) *AdvisorPanel {
	return &AdvisorPanel{X: x, Y: y, Width: width, Height: height}
}

func (p *AdvisorPanel) Draw(screen *ebiten.Image, entries []advisor.Entry) {
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), color.RGBA{12, 10, 9, 255}, false)
	DrawText(screen, "WAR COUNCIL", p.X+6, p.Y+4, config.GoldColor)

	cols := (p.Width - 12) / config.TextCharWidth
	y := p.Y + 4 + lineHeight
	bottom := p.Y + p.Height - lineHeight
	for i, e := range entries {
		title := "Scouts report, wave " + utils.ToRoman(e.Wave)
		if e.Kind == advisor.EntrySummary {
			title = "Counsel after wave " + utils.ToRoman(e.Wave)
		}
		textColor := config.TextLightColor
		if i > 0 {
			textColor = config.TextDimColor
		}
		if y > bottom {
			return
		}
		DrawText(screen, title, p.X+6, y, config.DangerColor)
		y += lineHeight
		for _, line := range utils.WrapText(e.Text, cols) {
			if y > bottom {
				return
			}
			DrawText(screen, line, p.X+6, y, textColor)
			y += lineHeight
		}
	}
	if len(entries) == 0 {
		DrawText(screen, "Awaiting word from the passes...", p.X+6, y, config.TextDimColor)
	}
}
