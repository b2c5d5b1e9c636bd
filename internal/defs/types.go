// internal/defs/types.go
package defs

// EnemyKind identifies an enemy stat profile.
type EnemyKind string

const (
	EnemyScout       EnemyKind = "SCOUT"
	EnemyTank        EnemyKind = "TANK"
	EnemyBoss        EnemyKind = "BOSS"
	EnemyRecon       EnemyKind = "RECON"
	EnemyLegionary   EnemyKind = "LEGIONARY"
	EnemyHorseArcher EnemyKind = "HORSE_ARCHER"
)

// TowerType identifies a tower stat profile.
type TowerType string

const (
	TowerBasic  TowerType = "BASIC"
	TowerSniper TowerType = "SNIPER"
	TowerPulse  TowerType = "PULSE"
	TowerFrost  TowerType = "FROST"
	TowerStun   TowerType = "STUN"
)

// TowerTypes lists tower types in shop order (keys 1..5).
var TowerTypes = []TowerType{TowerBasic, TowerSniper, TowerPulse, TowerFrost, TowerStun}

// TargetingMode is the rule a tower uses to pick one enemy in range.
type TargetingMode string

const (
	TargetFirst     TargetingMode = "FIRST"  // closest to the gate
	TargetLast      TargetingMode = "LAST"   // furthest from the gate
	TargetStrongest TargetingMode = "STRONG" // highest hp
	TargetWeakest   TargetingMode = "WEAK"   // lowest hp
	TargetClosest   TargetingMode = "CLOSE"  // closest to the tower
)

// TargetingModes lists the modes in the order they are cycled through.
var TargetingModes = []TargetingMode{TargetFirst, TargetLast, TargetStrongest, TargetWeakest, TargetClosest}

// Label returns the display name of the mode.
func (m TargetingMode) Label() string {
	switch m {
	case TargetFirst:
		return "Vanguard Focus"
	case TargetLast:
		return "Rearguard Strike"
	case TargetStrongest:
		return "Slay the Mightiest"
	case TargetWeakest:
		return "Finish the Wounded"
	case TargetClosest:
		return "Closest Proximity"
	default:
		return ""
	}
}

// Next returns the mode after m in TargetingModes, wrapping around.
func (m TargetingMode) Next() TargetingMode {
	for i, mode := range TargetingModes {
		if mode == m {
			return TargetingModes[(i+1)%len(TargetingModes)]
		}
	}
	return TargetFirst
}

// PathType selects which of a level's two paths an enemy walks.
type PathType string

const (
	PathPrimary   PathType = "primary"
	PathSecondary PathType = "secondary"
)
