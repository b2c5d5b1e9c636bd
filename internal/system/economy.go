// internal/system/economy.go
package system

import (
	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/entity"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/internal/logger"
)

// EconomySystem is the only writer of gold, lives and the outcome flags.
type EconomySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	levelCount      int
}

func NewEconomySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, levelCount int) *EconomySystem {
	return &EconomySystem{ecs: ecs, eventDispatcher: eventDispatcher, levelCount: levelCount}
}

// CanAfford reports whether the treasury holds at least amount.
func (s *EconomySystem) CanAfford(amount int) bool {
	return s.ecs.GameState.Gold >= amount
}

// Spend deducts amount if affordable and reports whether it did.
func (s *EconomySystem) Spend(amount int) bool {
	if amount < 0 || !s.CanAfford(amount) {
		return false
	}
	s.ecs.GameState.Gold -= amount
	return true
}

// Credit adds amount to the treasury.
func (s *EconomySystem) Credit(amount int) {
	if amount > 0 {
		s.ecs.GameState.Gold += amount
	}
}

// Kill pays the reward for a dead enemy.
func (s *EconomySystem) Kill(e *component.Enemy) {
	reward := defs.RewardFor(e.IsReinforcement)
	s.Credit(reward)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{
		ID: e.ID, Kind: e.Kind, Position: e.Position, Reward: reward,
	}})
}

// Breach applies the lives penalty for an enemy that reached the gate and
// ends the game when lives fall to the threshold.
func (s *EconomySystem) Breach(e *component.Enemy) {
	gs := s.ecs.GameState
	penalty := defs.BreachPenaltyFor(e.Kind)
	gs.Lives -= penalty
	if gs.Lives < 0 {
		gs.Lives = 0
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyBreached, Data: event.EnemyData{
		ID: e.ID, Kind: e.Kind, Position: e.Position, Penalty: penalty,
	}})

	if gs.Lives <= defs.GameOverLives && !gs.GameOver {
		gs.GameOver = true
		logger.Info("Castle has fallen", "wave", gs.Wave, "lives", gs.Lives)
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

// WaveCompleted marks the level cleared once the required wave is survived.
func (s *EconomySystem) WaveCompleted(number int, level defs.LevelDefinition) {
	gs := s.ecs.GameState
	if gs.LevelCleared || gs.GameOver || number < level.WavesToUnlock {
		return
	}
	gs.LevelCleared = true

	unlocked := gs.LevelIndex + 1
	if unlocked >= s.levelCount {
		unlocked = -1
	}
	logger.Info("Level cleared", "level", level.ID, "wave", number, "unlocked", unlocked)
	s.eventDispatcher.Dispatch(event.Event{Type: event.LevelCleared, Data: event.LevelData{
		Index: gs.LevelIndex, Unlocked: unlocked,
	}})
}
