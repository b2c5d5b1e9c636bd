// internal/system/wave.go
package system

import (
	"time"

	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/entity"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/internal/logger"
)

// WaveSystem выпускает врагов текущей волны по расписанию и
// определяет момент её завершения.
type WaveSystem struct {
	ecs             *entity.ECS
	level           defs.LevelDefinition
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, level defs.LevelDefinition, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{ecs: ecs, level: level, eventDispatcher: eventDispatcher}
}

// Interval returns the delay between spawns at the current speed.
func (s *WaveSystem) Interval() time.Duration {
	speed := s.ecs.GameState.SpeedMultiplier
	if speed < 1 {
		speed = 1
	}
	return defs.SpawnInterval / time.Duration(speed)
}

// Start begins the next wave. It does nothing while a wave is in progress
// or after game over.
func (s *WaveSystem) Start(now time.Time) bool {
	w := s.ecs.Wave
	gs := s.ecs.GameState
	if w.InProgress || gs.GameOver {
		return false
	}

	gs.Wave++
	gs.Paused = false
	w.Number = gs.Wave
	w.InProgress = true
	w.SummaryRequested = false
	w.EnemiesToSpawn = defs.SpawnCount(gs.Wave)
	w.NextSpawnAt = now.Add(s.Interval())

	logger.Info("Wave started", "wave", gs.Wave, "enemies", w.EnemiesToSpawn, "level", s.level.ID)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: gs.Wave}})
	return true
}

// Update releases at most one enemy per call once its spawn time is due.
func (s *WaveSystem) Update(now time.Time) {
	w := s.ecs.Wave
	if !w.Spawning() || s.ecs.GameState.GameOver {
		return
	}
	if now.Before(w.NextSpawnAt) {
		return
	}

	kind := defs.KindForSlot(w.Number, w.EnemiesToSpawn)
	s.Spawn(kind, defs.PathPrimary, false)
	w.EnemiesToSpawn--
	w.NextSpawnAt = now.Add(s.Interval())
}

// Spawn places a new enemy of kind at the start of the chosen path with hp
// scaled by the current wave and level.
func (s *WaveSystem) Spawn(kind defs.EnemyKind, pathType defs.PathType, reinforcement bool) *component.Enemy {
	def := defs.Enemy(kind)
	hp := defs.ScaledHealth(def.Kind, s.ecs.GameState.Wave, s.ecs.GameState.LevelIndex)
	path := s.level.PathFor(pathType)

	e := &component.Enemy{
		ID:              s.ecs.NewEntity(),
		Kind:            def.Kind,
		HP:              hp,
		MaxHP:           hp,
		Speed:           def.Speed,
		Position:        path.Start(),
		IsReinforcement: reinforcement,
		PathType:        pathType,
	}
	s.ecs.AddEnemy(e)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{
		ID: e.ID, Kind: e.Kind, Position: e.Position,
	}})
	return e
}

// CheckCompletion ends the wave once nothing is left to spawn and the enemy
// registry is empty. It must run after dead enemies are reaped.
func (s *WaveSystem) CheckCompletion() bool {
	w := s.ecs.Wave
	if !w.InProgress || w.EnemiesToSpawn > 0 || len(s.ecs.Enemies) > 0 {
		return false
	}
	w.InProgress = false
	s.ecs.GameState.Paused = true

	logger.Info("Wave ended", "wave", w.Number, "gold", s.ecs.GameState.Gold, "lives", s.ecs.GameState.Lives)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Number: w.Number}})
	return true
}
