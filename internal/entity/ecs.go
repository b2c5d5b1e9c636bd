// internal/entity/ecs.go
package entity

import (
	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/types"
)

// ECS holds the three entity registries and the session state. Registries
// are slices so that iteration order is insertion order; systems rely on it
// to break targeting ties.
type ECS struct {
	NextID      types.EntityID
	Enemies     []*component.Enemy
	Towers      []*component.Tower
	Projectiles []*component.Projectile
	Wave        *component.Wave
	GameState   *component.GameState
}

// NewECS creates empty registries with the given starting economy.
func NewECS(gold, lives, levelIndex int) *ECS {
	return &ECS{
		NextID:      1,
		Enemies:     make([]*component.Enemy, 0, 64),
		Towers:      make([]*component.Tower, 0, 16),
		Projectiles: make([]*component.Projectile, 0, 64),
		Wave:        &component.Wave{},
		GameState: &component.GameState{
			Gold:            gold,
			Lives:           lives,
			Paused:          true,
			LevelIndex:      levelIndex,
			SpeedMultiplier: 1,
		},
	}
}

// NewEntity returns the next unused id.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy appends e to the enemy registry.
func (ecs *ECS) AddEnemy(e *component.Enemy) {
	ecs.Enemies = append(ecs.Enemies, e)
}

// AddTower appends t to the tower registry.
func (ecs *ECS) AddTower(t *component.Tower) {
	ecs.Towers = append(ecs.Towers, t)
}

// AddProjectile appends p to the projectile registry.
func (ecs *ECS) AddProjectile(p *component.Projectile) {
	ecs.Projectiles = append(ecs.Projectiles, p)
}

// Enemy returns the enemy with id, dead or alive, if it is still registered.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	for _, e := range ecs.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Tower returns the tower with id.
func (ecs *ECS) Tower(id types.EntityID) (*component.Tower, bool) {
	for _, t := range ecs.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// RemoveTower deletes the tower with id, keeping the order of the others.
func (ecs *ECS) RemoveTower(id types.EntityID) (*component.Tower, bool) {
	for i, t := range ecs.Towers {
		if t.ID == id {
			ecs.Towers = append(ecs.Towers[:i], ecs.Towers[i+1:]...)
			return t, true
		}
	}
	return nil, false
}

// ReapEnemies removes every dead enemy and returns how many were removed.
func (ecs *ECS) ReapEnemies() int {
	kept := ecs.Enemies[:0]
	for _, e := range ecs.Enemies {
		if !e.IsDead {
			kept = append(kept, e)
		}
	}
	removed := len(ecs.Enemies) - len(kept)
	for i := len(kept); i < len(ecs.Enemies); i++ {
		ecs.Enemies[i] = nil
	}
	ecs.Enemies = kept
	return removed
}

// LivingEnemies returns the number of enemies not yet marked dead.
func (ecs *ECS) LivingEnemies() int {
	n := 0
	for _, e := range ecs.Enemies {
		if !e.IsDead {
			n++
		}
	}
	return n
}
