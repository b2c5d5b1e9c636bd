// internal/ui/wave_indicator.go
package ui

import (
	"image/color"

	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.GoldColor,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
	}
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		DrawCenteredText(screen, "-", i.X, i.Y, config.TextDimColor)
		return
	}

	textColor := i.Color
	if waveNumber%5 == 0 {
		textColor = config.DangerColor // волна с Агой
	}
	DrawOutlinedText(screen, utils.ToRoman(waveNumber), i.X, i.Y, i.OutlineThickness, textColor, i.OutlineColor)
}
