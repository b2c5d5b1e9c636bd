// pkg/render/fog.go
package render

import (
	"image/color"

	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/utils"
	"go-bastion-defense/pkg/fog"

	"github.com/hajimehoshi/ebiten/v2"
)

// FogCellSize — сторона клетки тумана в пикселях холста.
const FogCellSize = 4

// Fog draws the fog of war over the battlefield. It implements the
// simulation's Revealer.
type Fog struct {
	grid   *fog.Grid
	noise  []uint8
	pixels []byte
	image  *ebiten.Image
}

// NewFog creates a fully hidden fog layer. seed fixes the star speckle.
func NewFog(seed int64) *Fog {
	cols := config.CanvasWidth / FogCellSize
	rows := config.CanvasHeight / FogCellSize
	f := &Fog{
		grid:   fog.NewGrid(config.CanvasWidth, config.CanvasHeight, cols, rows),
		noise:  make([]uint8, cols*rows),
		pixels: make([]byte, cols*rows*4),
	}
	// Редкие светлые точки, чтобы туман не был сплошной заливкой.
	prng := utils.NewPRNGService(seed)
	for i := 0; i < len(f.noise)/8; i++ {
		f.noise[prng.Intn(len(f.noise))] = uint8(prng.Intn(20))
	}
	return f
}

func (f *Fog) RevealArea(x, y, radius float64) {
	f.grid.RevealArea(x, y, radius)
}

// Reset hides the whole battlefield again.
func (f *Fog) Reset() {
	f.grid.Reset()
}

// Regrow lets the fog creep back; called once per unpaused tick.
func (f *Fog) Regrow(speedMultiplier int) {
	f.grid.Regrow(config.FogRegrowRate * float64(speedMultiplier))
}

// Draw composites the fog onto the battlefield.
func (f *Fog) Draw(screen *ebiten.Image) {
	cols, rows := f.grid.Cols(), f.grid.Rows()
	if f.image == nil {
		f.image = ebiten.NewImage(cols, rows)
	}
	base := config.FogColor
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := row*cols + col
			a := f.grid.Density(col, row)
			c := color.RGBA{
				R: base.R + f.noise[i],
				G: base.G + f.noise[i],
				B: base.B + f.noise[i],
			}
			// WritePixels ждёт premultiplied alpha.
			f.pixels[i*4] = uint8(float64(c.R) * a)
			f.pixels[i*4+1] = uint8(float64(c.G) * a)
			f.pixels[i*4+2] = uint8(float64(c.B) * a)
			f.pixels[i*4+3] = uint8(255 * a)
		}
	}
	f.image.WritePixels(f.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(FogCellSize, FogCellSize)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(f.image, op)
}
