// internal/defs/levels.go
package defs

import "go-bastion-defense/pkg/geom"

// LevelDefinition describes one map: the paths enemies walk and the wave
// that must be survived to unlock the next map.
type LevelDefinition struct {
	ID            string    `yaml:"id"`
	Name          string    `yaml:"name"`
	Description   string    `yaml:"description"`
	Path          geom.Path `yaml:"path"`
	SecondaryPath geom.Path `yaml:"secondary_path,omitempty"`
	WavesToUnlock int       `yaml:"waves_to_unlock"`
}

// PathFor returns the path for t. The secondary path falls back to the
// primary one when the level has none.
func (l LevelDefinition) PathFor(t PathType) geom.Path {
	if t == PathSecondary && len(l.SecondaryPath) > 0 {
		return l.SecondaryPath
	}
	return l.Path
}

// HasSecondaryPath reports whether the level defines its own secondary path.
func (l LevelDefinition) HasSecondaryPath() bool {
	return len(l.SecondaryPath) > 0
}

// DefaultLevels is the built-in campaign.
var DefaultLevels = []LevelDefinition{
	{
		ID:            "kruje",
		Name:          "The Bastion of Krujë",
		Description:   "The capital of the resistance. Defend the winding mountain pass to the castle gates.",
		WavesToUnlock: 10,
		Path: geom.Path{
			{X: -50, Y: 150}, {X: 250, Y: 150}, {X: 250, Y: 350}, {X: 150, Y: 350},
			{X: 150, Y: 500}, {X: 650, Y: 500}, {X: 650, Y: 200}, {X: 850, Y: 200},
		},
		SecondaryPath: geom.Path{
			{X: 400, Y: 650}, {X: 400, Y: 500}, {X: 650, Y: 500}, {X: 650, Y: 200}, {X: 850, Y: 200},
		},
	},
	{
		ID:            "berat",
		Name:          "Stronghold of Berat",
		Description:   "The city of a thousand windows. A complex urban defense with sharp turns.",
		WavesToUnlock: 12,
		Path: geom.Path{
			{X: 400, Y: -50}, {X: 400, Y: 150}, {X: 100, Y: 150}, {X: 100, Y: 450},
			{X: 700, Y: 450}, {X: 700, Y: 100}, {X: 850, Y: 100},
		},
		SecondaryPath: geom.Path{
			{X: -50, Y: 450}, {X: 100, Y: 450}, {X: 700, Y: 450}, {X: 700, Y: 100}, {X: 850, Y: 100},
		},
	},
	{
		ID:            "shkoder",
		Name:          "Rozafa Fortress, Shkodër",
		Description:   "An ancient northern sentinel. Force the invaders into a narrow bottleneck.",
		WavesToUnlock: 15,
		Path: geom.Path{
			{X: -50, Y: 300}, {X: 300, Y: 300}, {X: 300, Y: 100}, {X: 500, Y: 100},
			{X: 500, Y: 500}, {X: 850, Y: 500},
		},
		SecondaryPath: geom.Path{
			{X: 500, Y: -50}, {X: 500, Y: 100}, {X: 500, Y: 500}, {X: 850, Y: 500},
		},
	},
	{
		ID:            "durres",
		Name:          "The Durrës Seawall",
		Description:   "Protect the vital port. The invaders arrive from the Adriatic coast.",
		WavesToUnlock: 20,
		Path: geom.Path{
			{X: -50, Y: 500}, {X: 150, Y: 500}, {X: 150, Y: 100}, {X: 350, Y: 100},
			{X: 350, Y: 500}, {X: 550, Y: 500}, {X: 550, Y: 100}, {X: 850, Y: 100},
		},
		SecondaryPath: geom.Path{
			{X: 350, Y: -50}, {X: 350, Y: 100}, {X: 350, Y: 500}, {X: 550, Y: 500},
			{X: 550, Y: 100}, {X: 850, Y: 100},
		},
	},
}
