// internal/component/enemy.go
package component

import (
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/types"
	"go-bastion-defense/pkg/geom"
)

// Enemy — враг, идущий по одному из путей уровня.
type Enemy struct {
	ID              types.EntityID
	Kind            defs.EnemyKind
	HP              float64
	MaxHP           float64
	Speed           float64 // дистанция за тик при скорости 1x
	Progress        float64 // 0..100, доля пройденного пути
	PathIndex       int     // индекс последней достигнутой точки пути
	Position        geom.Position
	IsDead          bool
	IsReinforcement bool
	PathType        defs.PathType
}

// Alive reports whether the enemy can still be targeted or moved.
func (e *Enemy) Alive() bool {
	return !e.IsDead
}

// HealthRatio returns hp as a fraction of max hp in [0, 1].
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return geom.Clamp(e.HP/e.MaxHP, 0, 1)
}
