// internal/event/types.go
package event

import (
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/types"
	"go-bastion-defense/pkg/geom"
)

const (
	WaveStarted   EventType = "WaveStarted"   // Data: WaveData
	WaveEnded     EventType = "WaveEnded"     // Data: WaveData
	EnemySpawned  EventType = "EnemySpawned"  // Data: EnemyData
	EnemyKilled   EventType = "EnemyKilled"   // Data: EnemyData
	EnemyBreached EventType = "EnemyBreached" // Data: EnemyData
	TowerPlaced   EventType = "TowerPlaced"   // Data: TowerData
	TowerUpgraded EventType = "TowerUpgraded" // Data: TowerData
	TowerRemoved  EventType = "TowerRemoved"  // Data: TowerData
	TowerFired    EventType = "TowerFired"    // Data: TowerData
	GameOver      EventType = "GameOver"      // Data: nil
	LevelCleared  EventType = "LevelCleared"  // Data: LevelData
)

// AllTypes lists every event type.
var AllTypes = []EventType{
	WaveStarted, WaveEnded, EnemySpawned, EnemyKilled, EnemyBreached,
	TowerPlaced, TowerUpgraded, TowerRemoved, TowerFired, GameOver, LevelCleared,
}

// WaveData is the payload of wave events.
type WaveData struct {
	Number int
}

// EnemyData is the payload of enemy events.
type EnemyData struct {
	ID       types.EntityID
	Kind     defs.EnemyKind
	Position geom.Position
	Reward   int // gold awarded, EnemyKilled only
	Penalty  int // lives lost, EnemyBreached only
}

// TowerData is the payload of tower events.
type TowerData struct {
	ID       types.EntityID
	Type     defs.TowerType
	Position geom.Position
	Level    int
	Gold     int // gold spent (positive) or refunded (negative)
}

// LevelData is the payload of LevelCleared.
type LevelData struct {
	Index    int
	Unlocked int // index of the level unlocked by this clear, -1 if none
}
