// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds the static data for one enemy kind.
type EnemyDefinition struct {
	Kind    EnemyKind
	Unit    string
	Faction string
	Health  float64 // base hp before wave and level scaling
	Speed   float64 // distance per tick at 1x
	Color   color.RGBA
}

// Breach penalties in lives (percent of castle integrity).
const (
	BreachPenalty     = 5
	BossBreachPenalty = 30
	GameOverLives     = 5 // game ends once lives drop to this value or below
)

// Kill rewards in gold.
const (
	KillReward          = 30
	ReinforcementReward = 45
)

// EnemyLibrary is the stat table for every enemy kind.
var EnemyLibrary = map[EnemyKind]EnemyDefinition{
	EnemyScout:       {Kind: EnemyScout, Unit: "Border Raider", Faction: "Serbian Kingdom", Health: 45, Speed: 2.2, Color: color.RGBA{59, 130, 246, 255}},
	EnemyTank:        {Kind: EnemyTank, Unit: "Heavy Phalanx", Faction: "Greek Despotate", Health: 180, Speed: 1.0, Color: color.RGBA{14, 165, 233, 255}},
	EnemyBoss:        {Kind: EnemyBoss, Unit: "Janissary Agha", Faction: "Osman Empire", Health: 1200, Speed: 0.7, Color: color.RGBA{239, 68, 68, 255}},
	EnemyRecon:       {Kind: EnemyRecon, Unit: "Mountain Spy", Faction: "Montenegro", Health: 35, Speed: 4.0, Color: color.RGBA{245, 158, 11, 255}},
	EnemyLegionary:   {Kind: EnemyLegionary, Unit: "Janissary Infantry", Faction: "Osman Empire", Health: 300, Speed: 1.2, Color: color.RGBA{239, 68, 68, 255}},
	EnemyHorseArcher: {Kind: EnemyHorseArcher, Unit: "Sipahi Cavalry", Faction: "Osman Empire", Health: 80, Speed: 3.2, Color: color.RGBA{239, 68, 68, 255}},
}

// Enemy returns the definition for kind. Unknown kinds fall back to Scout.
func Enemy(kind EnemyKind) EnemyDefinition {
	if def, ok := EnemyLibrary[kind]; ok {
		return def
	}
	return EnemyLibrary[EnemyScout]
}

// BreachPenaltyFor returns how many lives a breach by kind costs.
func BreachPenaltyFor(kind EnemyKind) int {
	if kind == EnemyBoss {
		return BossBreachPenalty
	}
	return BreachPenalty
}

// RewardFor returns the gold paid for killing an enemy.
func RewardFor(isReinforcement bool) int {
	if isReinforcement {
		return ReinforcementReward
	}
	return KillReward
}
