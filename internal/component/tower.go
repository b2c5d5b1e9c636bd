// internal/component/tower.go
package component

import (
	"time"

	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/types"
	"go-bastion-defense/pkg/geom"
)

// Tower — башня игрока. Позиция задаётся при постройке и больше не меняется.
type Tower struct {
	ID            types.EntityID
	Type          defs.TowerType
	Position      geom.Position
	Range         float64
	Damage        int
	Cooldown      int       // мс между выстрелами при скорости 1x
	LastFired     time.Time // нулевое значение: ещё не стреляла
	Level         int       // 1..defs.MaxTowerLevel
	Cost          int       // базовая цена типа
	TotalInvested int       // цена постройки плюс все улучшения
	TargetingMode defs.TargetingMode
}

// CooldownDuration returns the time between shots at the given speed multiplier.
func (t *Tower) CooldownDuration(speedMultiplier int) time.Duration {
	if speedMultiplier < 1 {
		speedMultiplier = 1
	}
	return time.Duration(t.Cooldown) * time.Millisecond / time.Duration(speedMultiplier)
}

// Ready reports whether the tower may fire at now.
func (t *Tower) Ready(now time.Time, speedMultiplier int) bool {
	if t.LastFired.IsZero() {
		return true
	}
	return now.Sub(t.LastFired) >= t.CooldownDuration(speedMultiplier)
}

// VisionRadius is the area a tower keeps revealed.
func (t *Tower) VisionRadius() float64 {
	return t.Range + defs.VisionBonus
}
