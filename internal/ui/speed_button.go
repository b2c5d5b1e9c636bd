// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-bastion-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton — кнопка переключения 1x/2x в виде двух треугольников.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int // 0 — 1x, 1 — 2x
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

// SetSpeed syncs the button with the session's multiplier.
func (b *SpeedButton) SetSpeed(multiplier int) {
	state := multiplier - 1
	if state < 0 || state >= len(b.StateColors) {
		state = 0
	}
	b.CurrentState = state
}

// IsClicked использует круг для попадания, так как форма сложная.
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// Toggle records a click, honoring config.ClickCooldown.
func (b *SpeedButton) Toggle() bool {
	if time.Since(b.LastToggleTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
	return true
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	c := toRGBA(b.StateColors[b.CurrentState])
	height := size * 1.2
	width := size
	offset := width * 0.8

	fillPolygon(screen, [][2]float32{
		{b.X - width, b.Y - height/2}, {b.X, b.Y}, {b.X - width, b.Y + height/2},
	}, c)
	fillPolygon(screen, [][2]float32{
		{b.X - width + offset, b.Y - height/2}, {b.X + offset, b.Y}, {b.X - width + offset, b.Y + height/2},
	}, c)
}
