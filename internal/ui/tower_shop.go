// internal/ui/tower_shop.go
package ui

import (
	"fmt"
	"image"
	"time"

	"go-bastion-defense/internal/app"
	"go-bastion-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
)

const shopRowHeight = 28

// TowerShop lists the buildable tower types; the row number is the hotkey.
type TowerShop struct {
	buttons []*Button
}

func NewTowerShop(x, y, width int) *TowerShop {
	s := &TowerShop{}
	for i, t := range defs.TowerTypes {
		def, _ := defs.Tower(t)
		rect := image.Rect(x, y+i*(shopRowHeight+4), x+width, y+i*(shopRowHeight+4)+shopRowHeight)
		s.buttons = append(s.buttons, NewButton(rect, fmt.Sprintf("[%d] %-17s %4dg", i+1, def.Name, def.Cost)))
	}
	return s
}

// Update returns the type whose row was clicked.
func (s *TowerShop) Update(x, y int, clicked bool) (defs.TowerType, bool) {
	if !clicked {
		return "", false
	}
	// Недоступные по цене типы тоже можно выбрать, постройка просто не пройдёт.
	for i, b := range s.buttons {
		if b.Contains(x, y) {
			b.LastClickTime = time.Now()
			return defs.TowerTypes[i], true
		}
	}
	return "", false
}

func (s *TowerShop) Draw(screen *ebiten.Image, snap *app.Snapshot, cursorX, cursorY int) {
	for i, b := range s.buttons {
		def, _ := defs.Tower(defs.TowerTypes[i])
		b.Active = snap.SelectedType == def.Type
		b.Disabled = snap.Gold < def.Cost
		b.Draw(screen, cursorX, cursorY)
	}
}

// Bottom returns the y coordinate below the last row.
func (s *TowerShop) Bottom() int {
	return s.buttons[len(s.buttons)-1].Rect.Max.Y
}
