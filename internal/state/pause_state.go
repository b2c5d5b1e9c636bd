// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState — меню поверх боя. Симуляция стоит, пока оно открыто.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	wasPaused     bool
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	session := s.stateMachine.Context().Session
	s.wasPaused = session.Snapshot().Paused
	if !s.wasPaused {
		session.TogglePause()
	}
}

func (s *PauseState) Update(deltaTime float64) {
	session := s.stateMachine.Context().Session
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyP):
		s.stateMachine.SetState(s.previousState)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		session.Restart()
		s.wasPaused = true
		s.stateMachine.SetState(s.previousState)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.wasPaused = true
		s.stateMachine.SetState(NewMenuState(s.stateMachine))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	dim(screen, 128)
	cx, cy := config.CanvasWidth/2, config.CanvasHeight/2
	ui.DrawOutlinedText(screen, "COUNCIL OF WAR", cx, cy-30, 1, config.GoldColor, color.Black)
	ui.DrawCenteredText(screen, "[Esc] return to the walls", cx, cy, config.TextLightColor)
	ui.DrawCenteredText(screen, "[R] restart this stronghold", cx, cy+18, config.TextLightColor)
	ui.DrawCenteredText(screen, "[M] war map", cx, cy+36, config.TextLightColor)
}

// Exit возвращает прежнее состояние паузы симуляции.
func (s *PauseState) Exit() {
	session := s.stateMachine.Context().Session
	if !s.wasPaused && session.Snapshot().Paused {
		session.TogglePause()
	}
}
