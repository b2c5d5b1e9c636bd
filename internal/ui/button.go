// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"go-bastion-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect          image.Rectangle
	Text          string
	TextColor     color.Color
	BgColor       color.RGBA
	HoverColor    color.RGBA
	Active        bool // подсвечивается как выбранная
	Disabled      bool
	LastClickTime time.Time
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: color.RGBA{68, 64, 60, 255},
	}
}

// Contains reports whether (x, y) is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Click records a click for the press animation. Disabled buttons ignore it.
func (b *Button) Click(x, y int) bool {
	if b.Disabled || !b.Contains(x, y) {
		return false
	}
	b.LastClickTime = time.Now()
	return true
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	bg := b.BgColor
	switch {
	case b.Disabled:
		bg = color.RGBA{bg.R / 2, bg.G / 2, bg.B / 2, bg.A}
	case b.Active:
		bg = config.ButtonActiveColor
	case b.Contains(cursorX, cursorY):
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)

	// Рамка вспыхивает после клика и гаснет
	elapsed := time.Since(b.LastClickTime).Seconds()
	flash := float32(math.Exp(-elapsed * 8))
	border := color.RGBA{120, 113, 108, 255}
	if b.Active {
		border = config.GoldColor
	}
	vector.StrokeRect(screen, x, y, w, h, config.StrokeWidth*(1+flash), border, false)

	textColor := b.TextColor
	if b.Disabled {
		textColor = config.TextDimColor
	}
	DrawCenteredText(screen, b.Text, b.Rect.Min.X+b.Rect.Dx()/2, b.Rect.Min.Y+b.Rect.Dy()/2, textColor)
}
