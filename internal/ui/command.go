// internal/ui/command.go
package ui

import "go-bastion-defense/internal/defs"

// Action — что игрок запросил через интерфейс.
type Action int

const (
	ActionNone Action = iota
	ActionStartWave
	ActionTogglePause
	ActionToggleSpeed
	ActionSelectTowerType
	ActionUpgrade
	ActionRemove
	ActionCycleMode
	ActionDeselect
)

// Command is an Action plus its argument, if any.
type Command struct {
	Action    Action
	TowerType defs.TowerType
}
