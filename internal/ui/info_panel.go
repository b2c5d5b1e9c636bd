// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-bastion-defense/internal/app"
	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelWidth     = config.SidebarWidth - 2*panelMargin
	panelHeight    = 132
	panelMargin    = 8
	animationSpeed = 24.0
	lineHeight     = config.TextLineHeight
	buttonHeight   = 24
)

// InfoPanel показывает выбранную башню или врага и выезжает справа.
type InfoPanel struct {
	IsVisible bool
	Target    app.Selection
	Y         int
	currentX  float64
	targetX   float64

	UpgradeButton *Button
	RemoveButton  *Button
	ModeButton    *Button
}

func NewInfoPanel(y int) *InfoPanel {
	return &InfoPanel{
		Y:             y,
		currentX:      config.ScreenWidth,
		targetX:       config.ScreenWidth,
		UpgradeButton: NewButton(image.Rectangle{}, ""),
		RemoveButton:  NewButton(image.Rectangle{}, ""),
		ModeButton:    NewButton(image.Rectangle{}, "Mode"),
	}
}

func (p *InfoPanel) SetTarget(sel app.Selection) {
	p.Target = sel
	p.IsVisible = true
	p.targetX = config.CanvasWidth + panelMargin
}

func (p *InfoPanel) Hide() {
	p.targetX = config.ScreenWidth
}

// Shown reports whether the panel has finished sliding in.
func (p *InfoPanel) Shown() bool {
	return p.IsVisible && p.currentX == p.targetX && p.targetX < config.ScreenWidth
}

// Update follows the session selection and returns the button pressed.
func (p *InfoPanel) Update(snap *app.Snapshot, x, y int, clicked bool) Command {
	switch {
	case snap.Selection.Kind == app.SelectedNone:
		p.Hide()
	case snap.Selection != p.Target || !p.IsVisible:
		p.SetTarget(snap.Selection)
	}

	// Анимация панели
	if p.currentX != p.targetX {
		diff := p.targetX - p.currentX
		if math.Abs(diff) < animationSpeed {
			p.currentX = p.targetX
		} else if diff > 0 {
			p.currentX += animationSpeed
		} else {
			p.currentX -= animationSpeed
		}
		if p.currentX >= config.ScreenWidth {
			p.IsVisible = false
			p.Target = app.Selection{}
		}
	}
	p.layoutButtons()

	if !clicked || !p.Shown() || p.Target.Kind != app.SelectedTower {
		return Command{}
	}
	switch {
	case p.UpgradeButton.Click(x, y):
		return Command{Action: ActionUpgrade}
	case p.RemoveButton.Click(x, y):
		return Command{Action: ActionRemove}
	case p.ModeButton.Click(x, y):
		return Command{Action: ActionCycleMode}
	}
	return Command{}
}

// Contains reports whether (x, y) hits the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.rect())
}

func (p *InfoPanel) rect() image.Rectangle {
	x := int(p.currentX)
	return image.Rect(x, p.Y, x+panelWidth, p.Y+panelHeight)
}

func (p *InfoPanel) layoutButtons() {
	r := p.rect()
	w := (panelWidth - 4*6) / 3
	top := r.Max.Y - buttonHeight - 6
	for i, b := range []*Button{p.UpgradeButton, p.RemoveButton, p.ModeButton} {
		left := r.Min.X + 6 + i*(w+6)
		b.Rect = image.Rect(left, top, left+w, top+buttonHeight)
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap *app.Snapshot, cursorX, cursorY int) {
	if !p.IsVisible && p.currentX >= config.ScreenWidth {
		return
	}
	r := p.rect()
	bgColor := color.RGBA{R: 28, G: 25, B: 23, A: 240}
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bgColor, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.StrokeWidth, config.ButtonActiveColor, false)

	x, y := r.Min.X+8, r.Min.Y+8
	switch p.Target.Kind {
	case app.SelectedTower:
		if t, ok := snap.Tower(p.Target.ID); ok {
			p.drawTower(screen, &t, snap.Gold, x, y, cursorX, cursorY)
		}
	case app.SelectedEnemy:
		if e, ok := snap.Enemy(p.Target.ID); ok {
			drawEnemyInfo(screen, &e, x, y)
		}
	}
}

func (p *InfoPanel) drawTower(screen *ebiten.Image, t *component.Tower, gold, x, y, cursorX, cursorY int) {
	def, _ := defs.Tower(t.Type)
	DrawText(screen, fmt.Sprintf("%s  Lv.%d", def.Name, t.Level), x, y, config.GoldColor)
	lines := []string{
		fmt.Sprintf("DMG %d  RNG %.0f  CD %dms", t.Damage, t.Range, t.Cooldown),
		fmt.Sprintf("Invested %dg", t.TotalInvested),
		"Target: " + t.TargetingMode.Label(),
	}
	for i, line := range lines {
		DrawText(screen, line, x, y+(i+1)*lineHeight, config.TextLightColor)
	}

	if t.Level >= defs.MaxTowerLevel {
		p.UpgradeButton.Text = "MAX"
		p.UpgradeButton.Disabled = true
	} else {
		cost := defs.UpgradeCost(t.Cost, t.Level)
		p.UpgradeButton.Text = fmt.Sprintf("Up %dg", cost)
		p.UpgradeButton.Disabled = gold < cost
	}
	p.RemoveButton.Text = fmt.Sprintf("Sell %dg", defs.Refund(t.TotalInvested))

	for _, b := range []*Button{p.UpgradeButton, p.RemoveButton, p.ModeButton} {
		b.Draw(screen, cursorX, cursorY)
	}
}

func drawEnemyInfo(screen *ebiten.Image, e *component.Enemy, x, y int) {
	def := defs.Enemy(e.Kind)
	DrawText(screen, def.Unit, x, y, config.DangerColor)
	lines := []string{
		def.Faction,
		fmt.Sprintf("HP %.0f / %.0f", math.Max(e.HP, 0), e.MaxHP),
		fmt.Sprintf("Advance %.0f%%", e.Progress),
	}
	if e.IsReinforcement {
		lines = append(lines, "Reinforcement, flank route")
	}
	for i, line := range lines {
		DrawText(screen, line, x, y+(i+1)*lineHeight, config.TextLightColor)
	}
	bar := float32(panelWidth - 16)
	by := float32(y + (len(lines)+1)*lineHeight + 4)
	vector.DrawFilledRect(screen, float32(x), by, bar, 5, color.RGBA{69, 10, 10, 255}, false)
	vector.DrawFilledRect(screen, float32(x), by, bar*float32(e.HealthRatio()), 5, config.DangerColor, false)
}
