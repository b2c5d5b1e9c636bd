// internal/app/snapshot.go
package app

import (
	"go-bastion-defense/internal/advisor"
	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/types"
)

// Snapshot is a read-only copy of the session for renderers.
type Snapshot struct {
	component.GameState
	Level          defs.LevelDefinition
	WaveInProgress bool
	EnemiesToSpawn int

	Enemies     []component.Enemy
	Towers      []component.Tower
	Projectiles []component.Projectile

	SelectedType defs.TowerType
	Selection    Selection
	Advisor      []advisor.Entry
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		GameState:      *g.ECS.GameState,
		Level:          g.Level,
		WaveInProgress: g.ECS.Wave.InProgress,
		EnemiesToSpawn: g.ECS.Wave.EnemiesToSpawn,
		Enemies:        make([]component.Enemy, 0, len(g.ECS.Enemies)),
		Towers:         make([]component.Tower, 0, len(g.ECS.Towers)),
		Projectiles:    make([]component.Projectile, 0, len(g.ECS.Projectiles)),
		SelectedType:   g.selectedType,
		Selection:      g.Selection(),
		Advisor:        g.advisorLog.Entries(),
	}
	for _, e := range g.ECS.Enemies {
		s.Enemies = append(s.Enemies, *e)
	}
	for _, t := range g.ECS.Towers {
		s.Towers = append(s.Towers, *t)
	}
	for _, p := range g.ECS.Projectiles {
		s.Projectiles = append(s.Projectiles, *p)
	}
	return s
}

// AdvisorLog returns the advisor messages, newest first.
func (g *Game) AdvisorLog() []advisor.Entry {
	return g.advisorLog.Entries()
}

// Enemy returns a copy of enemy id from s.
func (s Snapshot) Enemy(id types.EntityID) (component.Enemy, bool) {
	for _, e := range s.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return component.Enemy{}, false
}

// Tower returns a copy of tower id from s.
func (s Snapshot) Tower(id types.EntityID) (component.Tower, bool) {
	for _, t := range s.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return component.Tower{}, false
}
