// internal/ui/sidebar.go
package ui

import (
	"fmt"
	"image"

	"go-bastion-defense/internal/app"
	"go-bastion-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sidebar is the command column to the right of the battlefield.
type Sidebar struct {
	x int

	waveIndicator   *WaveIndicator
	castleIndicator *CastleIndicator
	startButton     *Button
	pauseButton     *PauseButton
	speedButton     *SpeedButton
	shop            *TowerShop
	infoPanel       *InfoPanel
	advisorPanel    *AdvisorPanel
}

func NewSidebar() *Sidebar {
	x := config.CanvasWidth
	inner := config.SidebarWidth - 2*panelMargin
	s := &Sidebar{
		x:               x,
		waveIndicator:   NewWaveIndicator(x+config.SidebarWidth-40, 44),
		castleIndicator: NewCastleIndicator(float32(x+panelMargin), 64),
		startButton:     NewButton(image.Rect(x+panelMargin, 122, x+panelMargin+150, 150), "Start Wave [Space]"),
		pauseButton:     NewPauseButton(float32(x+200), 136, 9, config.TextLightColor, config.GoldColor),
		speedButton:     NewSpeedButton(float32(x+250), 136, 10, config.SpeedButtonColors),
	}
	s.shop = NewTowerShop(x+panelMargin, 162, inner)
	s.infoPanel = NewInfoPanel(s.shop.Bottom() + 8)
	top := s.infoPanel.Y + panelHeight + 6
	s.advisorPanel = NewAdvisorPanel(x+panelMargin, top, inner, config.ScreenHeight-top-panelMargin)
	return s
}

// Contains reports whether (x, y) is on the sidebar.
func (s *Sidebar) Contains(x, y int) bool {
	return x >= s.x && x < config.ScreenWidth && y >= 0 && y < config.ScreenHeight
}

// Update handles sidebar clicks and returns the resulting command.
func (s *Sidebar) Update(snap *app.Snapshot) Command {
	s.pauseButton.SetPaused(snap.Paused)
	s.speedButton.SetSpeed(snap.SpeedMultiplier)
	s.startButton.Disabled = snap.WaveInProgress || snap.GameOver

	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && s.Contains(x, y)

	if cmd := s.infoPanel.Update(snap, x, y, clicked); cmd.Action != ActionNone {
		return cmd
	}
	if !clicked {
		return Command{}
	}
	switch {
	case s.startButton.Click(x, y):
		return Command{Action: ActionStartWave}
	case s.pauseButton.IsClicked(x, y):
		if s.pauseButton.Toggle() {
			return Command{Action: ActionTogglePause}
		}
	case s.speedButton.IsClicked(x, y):
		if s.speedButton.Toggle() {
			return Command{Action: ActionToggleSpeed}
		}
	}
	if t, ok := s.shop.Update(x, y, true); ok {
		return Command{Action: ActionSelectTowerType, TowerType: t}
	}
	return Command{}
}

func (s *Sidebar) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	cx, cy := ebiten.CursorPosition()
	vector.DrawFilledRect(screen, float32(s.x), 0, config.SidebarWidth, config.ScreenHeight, config.SidebarColor, false)
	vector.StrokeLine(screen, float32(s.x), 0, float32(s.x), config.ScreenHeight, config.StrokeWidth, config.ButtonActiveColor, false)

	DrawText(screen, snap.Level.Name, s.x+panelMargin, 10, config.GoldColor)
	DrawText(screen, fmt.Sprintf("Gold %d", snap.Gold), s.x+panelMargin, 34, config.GoldColor)
	DrawText(screen, "WAVE", s.x+config.SidebarWidth-90, 38, config.TextDimColor)
	s.waveIndicator.Draw(screen, snap.Wave)
	s.castleIndicator.Draw(screen, snap.Lives)

	s.startButton.Draw(screen, cx, cy)
	s.pauseButton.Draw(screen)
	s.speedButton.Draw(screen)
	DrawText(screen, fmt.Sprintf("%dx", snap.SpeedMultiplier), int(s.speedButton.X)+16, 130, config.TextLightColor)

	s.shop.Draw(screen, snap, cx, cy)
	s.infoPanel.Draw(screen, snap, cx, cy)
	s.advisorPanel.Draw(screen, snap.Advisor)
}
