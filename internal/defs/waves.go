// internal/defs/waves.go
package defs

import "time"

// Wave schedule parameters.
const (
	BaseSpawnCount     = 10
	SpawnCountPerWave  = 3
	SpawnInterval      = 850 * time.Millisecond // at 1x
	BossWaveEvery      = 5
	WaveHPGrowth       = 0.6
	LevelHPGrowth      = 0.4
	ProjectileSpeed    = 15.0 // distance per tick at 1x
	PlacementExclusion = 35.0 // distance from a path segment midpoint
)

// SpawnCount returns how many enemies wave spawns.
func SpawnCount(wave int) int {
	return BaseSpawnCount + wave*SpawnCountPerWave
}

// KindForSlot picks the enemy kind for the next spawn of wave given how many
// spawns remain, counting the one being decided. A boss closes every fifth
// wave; otherwise every fifth remaining slot is a Legionary and every fourth
// a Tank.
func KindForSlot(wave, remaining int) EnemyKind {
	switch {
	case wave%BossWaveEvery == 0 && remaining == 1:
		return EnemyBoss
	case remaining%5 == 0:
		return EnemyLegionary
	case remaining%4 == 0:
		return EnemyTank
	default:
		return EnemyScout
	}
}

// ScaledHealth returns the spawn hp of kind for the given wave and level.
func ScaledHealth(kind EnemyKind, wave, levelIndex int) float64 {
	base := Enemy(kind).Health
	return base * (1 + float64(wave-1)*WaveHPGrowth) * (1 + float64(levelIndex)*LevelHPGrowth)
}
