// internal/defs/towers.go
package defs

import (
	"image/color"
	"math"
)

// MaxTowerLevel is the highest upgrade level.
const MaxTowerLevel = 5

// Upgrade scaling.
const (
	UpgradeCostFactor   = 1.5
	UpgradeDamageFactor = 1.3
	UpgradeRangeBonus   = 20
	UpgradeCooldownRate = 0.9
	MinCooldownMs       = 100
	RefundRate          = 0.75
	VisionBonus         = 90 // radius revealed beyond a tower's range
)

// TowerDefinition holds the static data for one tower type.
type TowerDefinition struct {
	Type        TowerType
	Name        string
	Description string
	Cost        int
	Range       float64
	Damage      int
	Cooldown    int // ms between shots at 1x
	Color       color.RGBA
}

// TowerLibrary is the stat table for every tower type.
var TowerLibrary = map[TowerType]TowerDefinition{
	TowerBasic: {
		Type: TowerBasic, Name: "Krujë Arbalest", Cost: 100, Range: 170, Damage: 15, Cooldown: 650,
		Color:       color.RGBA{153, 27, 27, 255},
		Description: "Expert crossbowmen defending the citadel walls.",
	},
	TowerSniper: {
		Type: TowerSniper, Name: "Mirditë Longbow", Cost: 250, Range: 360, Damage: 65, Cooldown: 1900,
		Color:       color.RGBA{30, 41, 59, 255},
		Description: "Elite mountain marksmen capable of striking from the peaks.",
	},
	TowerPulse: {
		Type: TowerPulse, Name: "Pitch & Sulfur", Cost: 400, Range: 120, Damage: 30, Cooldown: 1100,
		Color:       color.RGBA{234, 88, 12, 255},
		Description: "Scalding oil and pitch that burns the invaders.",
	},
	TowerFrost: {
		Type: TowerFrost, Name: "Iron Barricade", Cost: 200, Range: 140, Damage: 8, Cooldown: 750,
		Color:       color.RGBA{56, 189, 248, 255},
		Description: "Strategically placed debris and oil that slows the advance.",
	},
	TowerStun: {
		Type: TowerStun, Name: "Rock Volley", Cost: 350, Range: 150, Damage: 12, Cooldown: 2600,
		Color:       color.RGBA{209, 213, 219, 255},
		Description: "Massive boulders dropped from high cliffs to crush and daze.",
	},
}

// Tower returns the definition for t and whether it exists.
func Tower(t TowerType) (TowerDefinition, bool) {
	def, ok := TowerLibrary[t]
	return def, ok
}

// UpgradeCost is the price of raising a tower of base cost from level to level+1.
func UpgradeCost(baseCost, level int) int {
	return int(math.Floor(float64(baseCost) * (float64(level) * UpgradeCostFactor)))
}

// Refund is the gold returned when a tower with the given investment is removed.
func Refund(invested int) int {
	return int(math.Floor(float64(invested) * RefundRate))
}
