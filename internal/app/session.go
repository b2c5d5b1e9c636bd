// internal/app/session.go
package app

import (
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/logger"
)

// StartWave begins the next wave if none is in progress.
func (g *Game) StartWave() bool {
	return g.WaveSystem.Start(g.clock.Now())
}

// TogglePause flips the pause flag. It has no effect after game over.
func (g *Game) TogglePause() {
	gs := g.ECS.GameState
	if gs.GameOver {
		return
	}
	gs.Paused = !gs.Paused
}

// SetSpeed sets the speed multiplier; only 1 and 2 are accepted.
func (g *Game) SetSpeed(multiplier int) bool {
	if multiplier != 1 && multiplier != 2 {
		return false
	}
	g.ECS.GameState.SpeedMultiplier = multiplier
	return true
}

// ToggleSpeed switches between 1x and 2x.
func (g *Game) ToggleSpeed() int {
	if g.ECS.GameState.SpeedMultiplier == 1 {
		g.SetSpeed(2)
	} else {
		g.SetSpeed(1)
	}
	return g.ECS.GameState.SpeedMultiplier
}

// Restart discards the session and starts the current level again.
func (g *Game) Restart() {
	logger.Info("Restart", "level", g.Level.ID, "wave", g.ECS.GameState.Wave)
	g.reset(g.ECS.GameState.LevelIndex)
}

// SelectLevel starts a fresh session on level index if it is unlocked.
func (g *Game) SelectLevel(index int) bool {
	if index < 0 || index >= len(g.levels) || !g.unlocked[index] {
		return false
	}
	g.reset(index)
	return true
}

// Levels returns the campaign in order.
func (g *Game) Levels() []defs.LevelDefinition {
	return g.levels
}

// Unlocked reports whether level index can be selected.
func (g *Game) Unlocked(index int) bool {
	return index >= 0 && index < len(g.unlocked) && g.unlocked[index]
}
