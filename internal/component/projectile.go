// internal/component/projectile.go
package component

import (
	"go-bastion-defense/internal/types"
	"go-bastion-defense/pkg/geom"
)

// Projectile — летящий снаряд. Урон уже нанесён в момент выстрела,
// снаряд только показывает полёт до цели.
type Projectile struct {
	ID       types.EntityID
	Position geom.Position
	TargetID types.EntityID
	Speed    float64 // дистанция за тик, уже с учётом множителя скорости
	Damage   int
}
