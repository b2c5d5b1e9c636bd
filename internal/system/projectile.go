// internal/system/projectile.go
package system

import (
	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/entity"
	"go-bastion-defense/pkg/geom"
)

// ProjectileSystem ведёт снаряды к целям. Урон уже нанесён при выстреле,
// поэтому снаряд просто исчезает по прибытии или если цели больше нет.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update() {
	kept := s.ecs.Projectiles[:0]
	for _, proj := range s.ecs.Projectiles {
		if s.advance(proj) {
			kept = append(kept, proj)
		}
	}
	for i := len(kept); i < len(s.ecs.Projectiles); i++ {
		s.ecs.Projectiles[i] = nil
	}
	s.ecs.Projectiles = kept
}

// advance moves proj one tick and reports whether it is still in flight.
func (s *ProjectileSystem) advance(proj *component.Projectile) bool {
	target, ok := s.ecs.Enemy(proj.TargetID)
	if !ok {
		return false
	}
	next, arrived := geom.StepToward(proj.Position, target.Position, proj.Speed)
	if arrived {
		return false
	}
	proj.Position = next
	return true
}
