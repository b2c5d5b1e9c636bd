// internal/state/game_state.go
package state

import (
	"image/color"

	"go-bastion-defense/internal/app"
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/interfaces"
	"go-bastion-defense/internal/logger"
	"go-bastion-defense/internal/ui"
	"go-bastion-defense/pkg/geom"
	"go-bastion-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState — состояние боя: поле слева, командная колонка справа.
type GameState struct {
	sm      *StateMachine
	ctx     *Context
	session interfaces.Session
	snap    app.Snapshot
}

func NewGameState(sm *StateMachine) *GameState {
	ctx := sm.Context()
	return &GameState{sm: sm, ctx: ctx, session: ctx.Session}
}

func (g *GameState) Enter() {
	g.snap = g.session.Snapshot()
}

func (g *GameState) Update(deltaTime float64) {
	g.snap = g.session.Snapshot()

	if g.snap.GameOver {
		g.handleGameOverKeys()
	} else if g.handleKeys() {
		return
	}

	if cmd := g.ctx.Sidebar.Update(&g.snap); cmd.Action != ui.ActionNone {
		g.apply(cmd)
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if inCanvas(x, y) {
			sel := g.session.HandleClick(float64(x), float64(y))
			logger.Debug("Canvas click", "x", x, "y", y, "selection", sel.Kind)
		}
	}

	// Туман отрастает только пока симуляция идёт
	if !g.snap.Paused && !g.snap.GameOver {
		g.ctx.Fog.Regrow(g.snap.SpeedMultiplier)
	}
	g.session.Update()
	g.snap = g.session.Snapshot()
}

// handleKeys returns true when the state was replaced.
func (g *GameState) handleKeys() bool {
	for i, key := range towerKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.apply(ui.Command{Action: ui.ActionSelectTowerType, TowerType: defs.TowerTypes[i]})
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.apply(ui.Command{Action: ui.ActionStartWave})
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.apply(ui.Command{Action: ui.ActionTogglePause})
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.apply(ui.Command{Action: ui.ActionToggleSpeed})
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.apply(ui.Command{Action: ui.ActionUpgrade})
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete), inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.apply(ui.Command{Action: ui.ActionRemove})
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.apply(ui.Command{Action: ui.ActionCycleMode})
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if g.snap.Selection.Kind != app.SelectedNone {
			g.apply(ui.Command{Action: ui.ActionDeselect})
			return false
		}
		g.sm.SetState(NewPauseState(g.sm, g))
		return true
	case g.snap.LevelCleared && inpututil.IsKeyJustPressed(ebiten.KeyN):
		if g.session.SelectLevel(g.snap.LevelIndex + 1) {
			return false
		}
		g.sm.SetState(NewMenuState(g.sm))
		return true
	}
	return false
}

func (g *GameState) handleGameOverKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.session.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyM), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.sm.SetState(NewMenuState(g.sm))
	}
}

// apply maps a UI command onto the session.
func (g *GameState) apply(cmd ui.Command) {
	switch cmd.Action {
	case ui.ActionStartWave:
		g.session.StartWave()
	case ui.ActionTogglePause:
		g.session.TogglePause()
	case ui.ActionToggleSpeed:
		g.session.ToggleSpeed()
	case ui.ActionSelectTowerType:
		g.session.SelectTowerType(cmd.TowerType)
		g.session.ClearSelection()
	case ui.ActionUpgrade:
		if id, ok := interfaces.SelectedTowerID(&g.snap); ok {
			g.session.UpgradeTower(id)
		}
	case ui.ActionRemove:
		if id, ok := interfaces.SelectedTowerID(&g.snap); ok {
			g.session.RemoveTower(id)
		}
	case ui.ActionCycleMode:
		interfaces.CycleTargeting(g.session, &g.snap)
	case ui.ActionDeselect:
		g.session.ClearSelection()
	}
	g.snap = g.session.Snapshot()
}

func inCanvas(x, y int) bool {
	return x >= 0 && y >= 0 && x < config.CanvasWidth && y < config.CanvasHeight
}

func (g *GameState) Draw(screen *ebiten.Image) {
	x, y := ebiten.CursorPosition()
	ghost := render.Ghost{
		Visible:  inCanvas(x, y) && !g.snap.GameOver,
		Position: geom.Position{X: float64(x), Y: float64(y)},
		Type:     g.snap.SelectedType,
	}
	if ghost.Visible {
		def, _ := defs.Tower(ghost.Type)
		ghost.Placeable = g.session.CanPlaceAt(ghost.Position.X, ghost.Position.Y)
		ghost.Affordable = g.snap.Gold >= def.Cost
	}

	g.ctx.Renderer.Draw(screen, &g.snap, g.ctx.Fog, ghost)
	g.ctx.Sidebar.Draw(screen, &g.snap)
	g.drawBanner(screen)
}

// drawBanner выводит плашку поверх поля: ожидание волны, победа или поражение.
func (g *GameState) drawBanner(screen *ebiten.Image) {
	cx, cy := config.CanvasWidth/2, config.CanvasHeight/2
	switch {
	case g.snap.GameOver:
		dim(screen, 170)
		ui.DrawOutlinedText(screen, "THE BASTION HAS FALLEN", cx, cy-20, 1, config.DangerColor, color.Black)
		ui.DrawCenteredText(screen, "[R] hold the line again    [M] war map", cx, cy+10, config.TextLightColor)
	case g.snap.LevelCleared && !g.snap.WaveInProgress:
		ui.DrawOutlinedText(screen, "THE PASS IS HELD", cx, 30, 1, config.GoldColor, color.Black)
		ui.DrawCenteredText(screen, "[N] march to the next stronghold    [Space] keep fighting", cx, 52, config.TextLightColor)
	case g.snap.Paused && !g.snap.WaveInProgress:
		ui.DrawCenteredText(screen, "Press [Space] to sound the horn", cx, config.CanvasHeight-24, config.TextLightColor)
	case g.snap.Paused:
		ui.DrawOutlinedText(screen, "PAUSED", cx, 30, 1, config.TextLightColor, color.Black)
	}
}

func dim(screen *ebiten.Image, alpha uint8) {
	vector.DrawFilledRect(screen, 0, 0, config.CanvasWidth, config.CanvasHeight, color.RGBA{0, 0, 0, alpha}, false)
}

func (g *GameState) Exit() {}
