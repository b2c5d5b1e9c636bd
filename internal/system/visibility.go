// internal/system/visibility.go
package system

import (
	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/entity"
)

// Revealer is the rendering collaborator that lifts fog of war. Calls are
// purely additive and never feed back into the simulation.
type Revealer interface {
	RevealArea(x, y, radius float64)
}

// NopRevealer ignores every call.
type NopRevealer struct{}

func (NopRevealer) RevealArea(x, y, radius float64) {}

// VisibilitySystem keeps the area around every tower revealed.
type VisibilitySystem struct {
	ecs      *entity.ECS
	revealer Revealer
}

func NewVisibilitySystem(ecs *entity.ECS, revealer Revealer) *VisibilitySystem {
	if revealer == nil {
		revealer = NopRevealer{}
	}
	return &VisibilitySystem{ecs: ecs, revealer: revealer}
}

func (s *VisibilitySystem) Update() {
	for _, t := range s.ecs.Towers {
		s.RevealTower(t)
	}
}

// RevealTower reveals the vision radius of a single tower.
func (s *VisibilitySystem) RevealTower(t *component.Tower) {
	s.revealer.RevealArea(t.Position.X, t.Position.Y, t.VisionRadius())
}

// RevealPoint reveals an arbitrary area, used for the level entry and gate.
func (s *VisibilitySystem) RevealPoint(x, y, radius float64) {
	s.revealer.RevealArea(x, y, radius)
}
