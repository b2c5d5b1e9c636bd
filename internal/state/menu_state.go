// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/logger"
	"go-bastion-defense/internal/ui"
	"go-bastion-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	menuTop       = 150
	menuRowHeight = 64
	menuWidth     = 560
)

var levelKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}

// MenuState — выбор уровня. Закрытые уровни показаны, но не выбираются.
type MenuState struct {
	sm       *StateMachine
	cursor   int
	buttons  []*ui.Button
	warnTime float64 // сколько ещё показывать предупреждение о закрытом уровне
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {
	session := m.sm.Context().Session
	m.buttons = m.buttons[:0]
	left := (config.ScreenWidth - menuWidth) / 2
	for i, level := range session.Levels() {
		top := menuTop + i*menuRowHeight
		m.buttons = append(m.buttons, ui.NewButton(image.Rect(left, top, left+menuWidth, top+menuRowHeight-10), level.Name))
	}
	m.cursor = session.Snapshot().LevelIndex
	logger.Debug("Menu opened", "levels", len(m.buttons))
}

func (m *MenuState) Update(deltaTime float64) {
	if m.warnTime > 0 {
		m.warnTime -= deltaTime
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		m.cursor = (m.cursor + len(m.buttons) - 1) % len(m.buttons)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		m.cursor = (m.cursor + 1) % len(m.buttons)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		m.choose(m.cursor)
		return
	}
	for i, key := range levelKeys {
		if i < len(m.buttons) && inpututil.IsKeyJustPressed(key) {
			m.choose(i)
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range m.buttons {
			if b.Contains(x, y) {
				m.choose(i)
				return
			}
		}
	}
}

func (m *MenuState) choose(index int) {
	m.cursor = index
	if !m.sm.Context().Session.SelectLevel(index) {
		m.warnTime = 2
		return
	}
	m.sm.SetState(NewGameState(m.sm))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	session := m.sm.Context().Session

	cx := config.ScreenWidth / 2
	ui.DrawOutlinedText(screen, "THE BASTION OF SKANDERBEG", cx, 60, 1, config.GoldColor, config.ButtonActiveColor)
	ui.DrawCenteredText(screen, "Hold the passes of Arbëria against the invaders", cx, 90, config.TextDimColor)

	cursorX, cursorY := ebiten.CursorPosition()
	levels := session.Levels()
	for i, b := range m.buttons {
		unlocked := session.Unlocked(i)
		b.Active = i == m.cursor
		b.Disabled = !unlocked
		b.Text = fmt.Sprintf("%s  %s", utils.ToRoman(i+1), levels[i].Name)
		if !unlocked {
			b.Text += "  [locked]"
		}
		b.Draw(screen, cursorX, cursorY)
	}

	if m.cursor < len(levels) {
		level := levels[m.cursor]
		y := menuTop + len(levels)*menuRowHeight + 10
		for i, line := range utils.WrapText(level.Description, menuWidth/config.TextCharWidth) {
			ui.DrawCenteredText(screen, line, cx, y+i*config.TextLineHeight, config.TextLightColor)
		}
		y += 3 * config.TextLineHeight
		ui.DrawCenteredText(screen, fmt.Sprintf("Survive %d waves to unlock the next stronghold", level.WavesToUnlock), cx, y, config.TextDimColor)
	}
	if m.warnTime > 0 {
		ui.DrawCenteredText(screen, "That stronghold is still in enemy hands", cx, config.ScreenHeight-40, config.DangerColor)
	}
}

func (m *MenuState) Exit() {}
