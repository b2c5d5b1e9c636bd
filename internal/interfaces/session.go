// internal/interfaces/session.go
package interfaces

import (
	"go-bastion-defense/internal/app"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/types"
)

// Session — то, что фронтенды (ebiten и терминал) вызывают у игры.
type Session interface {
	Update()
	Snapshot() app.Snapshot

	StartWave() bool
	TogglePause()
	ToggleSpeed() int
	Restart()
	SelectLevel(index int) bool
	Levels() []defs.LevelDefinition
	Unlocked(index int) bool

	SelectTowerType(t defs.TowerType) bool
	HandleClick(x, y float64) app.Selection
	ClearSelection()
	CanPlaceAt(x, y float64) bool
	UpgradeTower(id types.EntityID) bool
	RemoveTower(id types.EntityID) bool
	SetTargetingMode(id types.EntityID, mode defs.TargetingMode) bool
}

var _ Session = (*app.Game)(nil)

// CycleTargeting moves the selected tower to its next targeting mode.
func CycleTargeting(s Session, snap *app.Snapshot) bool {
	if snap.Selection.Kind != app.SelectedTower {
		return false
	}
	t, ok := snap.Tower(snap.Selection.ID)
	if !ok {
		return false
	}
	return s.SetTargetingMode(t.ID, t.TargetingMode.Next())
}

// SelectedTowerID returns the selected tower, if any.
func SelectedTowerID(snap *app.Snapshot) (types.EntityID, bool) {
	if snap.Selection.Kind != app.SelectedTower {
		return 0, false
	}
	return snap.Selection.ID, true
}
