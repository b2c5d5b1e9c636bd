// internal/system/movement.go
package system

import (
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/entity"
	"go-bastion-defense/pkg/geom"
)

// MovementSystem двигает врагов по их путям и фиксирует прорывы.
type MovementSystem struct {
	ecs     *entity.ECS
	level   defs.LevelDefinition
	economy *EconomySystem
}

func NewMovementSystem(ecs *entity.ECS, level defs.LevelDefinition, economy *EconomySystem) *MovementSystem {
	return &MovementSystem{ecs: ecs, level: level, economy: economy}
}

// Update advances every living enemy by one tick.
func (s *MovementSystem) Update() {
	speed := float64(s.ecs.GameState.SpeedMultiplier)
	for _, e := range s.ecs.Enemies {
		if e.IsDead {
			continue
		}
		path := s.level.PathFor(e.PathType)
		target, ok := path.Waypoint(e.PathIndex + 1)
		if !ok {
			// Конец пути: враг прорвался к воротам.
			e.IsDead = true
			s.economy.Breach(e)
			continue
		}

		next, arrived := geom.StepToward(e.Position, target, e.Speed*speed)
		if arrived {
			// Остаток хода отбрасывается.
			e.Position = target
			e.PathIndex++
		} else {
			e.Position = next
		}
		e.Progress = path.Progress(e.PathIndex)
	}
}
