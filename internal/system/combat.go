// internal/system/combat.go
package system

import (
	"time"

	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/entity"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/pkg/geom"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	economy         *EconomySystem
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, economy *EconomySystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		economy:         economy,
		eventDispatcher: eventDispatcher,
	}
}

// Update lets every tower that is off cooldown fire once at now.
func (s *CombatSystem) Update(now time.Time) {
	speed := s.ecs.GameState.SpeedMultiplier
	for _, tower := range s.ecs.Towers {
		if !tower.Ready(now, speed) {
			continue
		}
		target := SelectTarget(tower, s.ecs.Enemies)
		if target == nil {
			continue
		}
		s.fire(tower, target, now, speed)
	}
}

func (s *CombatSystem) fire(tower *component.Tower, target *component.Enemy, now time.Time, speed int) {
	tower.LastFired = now
	target.HP -= float64(tower.Damage)

	s.ecs.AddProjectile(&component.Projectile{
		ID:       s.ecs.NewEntity(),
		Position: tower.Position,
		TargetID: target.ID,
		Speed:    defs.ProjectileSpeed * float64(speed),
		Damage:   tower.Damage,
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: event.TowerData{
		ID: tower.ID, Type: tower.Type, Position: tower.Position, Level: tower.Level,
	}})

	if target.HP <= 0 {
		target.IsDead = true
		s.economy.Kill(target)
	}
}

// SelectTarget returns the living enemy in range that tower's targeting mode
// prefers, or nil. Ties go to the enemy that comes first in enemies.
func SelectTarget(tower *component.Tower, enemies []*component.Enemy) *component.Enemy {
	var best *component.Enemy
	bestDist := 0.0
	for _, e := range enemies {
		if e.IsDead {
			continue
		}
		dist := geom.Distance(tower.Position, e.Position)
		if dist > tower.Range {
			continue
		}
		if best == nil || better(tower.TargetingMode, e, dist, best, bestDist) {
			best = e
			bestDist = dist
		}
	}
	return best
}

// better reports whether candidate strictly beats current under mode.
func better(mode defs.TargetingMode, candidate *component.Enemy, candDist float64, current *component.Enemy, curDist float64) bool {
	switch mode {
	case defs.TargetFirst:
		return candidate.Progress > current.Progress
	case defs.TargetLast:
		return candidate.Progress < current.Progress
	case defs.TargetStrongest:
		return candidate.HP > current.HP
	case defs.TargetWeakest:
		return candidate.HP < current.HP
	default:
		return candDist < curDist
	}
}
