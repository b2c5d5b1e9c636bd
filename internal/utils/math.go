// internal/utils/math.go
package utils

import "image/color"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// LerpColor смешивает два цвета, t в [0, 1].
func LerpColor(from, to color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(Lerp(float32(a), float32(b), float32(t)) + 0.5)
	}
	return color.RGBA{mix(from.R, to.R), mix(from.G, to.G), mix(from.B, to.B), mix(from.A, to.A)}
}
