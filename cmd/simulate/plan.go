// cmd/simulate/plan.go
package main

import (
	"errors"
	"fmt"
	"os"

	"go-bastion-defense/internal/defs"

	"gopkg.in/yaml.v3"
)

// Build — одна башня из плана обороны.
type Build struct {
	Type defs.TowerType     `yaml:"type"`
	X    float64            `yaml:"x"`
	Y    float64            `yaml:"y"`
	Mode defs.TargetingMode `yaml:"mode,omitempty"`
}

// Plan describes a scripted defence: what to build, in which order, and how
// many waves to fight.
type Plan struct {
	Level   int     `yaml:"level"`
	Waves   int     `yaml:"waves"`
	Speed   int     `yaml:"speed"`
	Upgrade bool    `yaml:"upgrade"` // спускать остаток золота на улучшения
	Builds  []Build `yaml:"builds"`
}

// DefaultPlan holds the first pass with a few arbalests and a sniper.
func DefaultPlan() Plan {
	return Plan{
		Waves:   5,
		Speed:   2,
		Upgrade: true,
		Builds: []Build{
			{Type: defs.TowerBasic, X: 180, Y: 130},
			{Type: defs.TowerBasic, X: 420, Y: 300},
			{Type: defs.TowerSniper, X: 600, Y: 220, Mode: defs.TargetStrongest},
			{Type: defs.TowerFrost, X: 300, Y: 420},
		},
	}
}

// LoadPlan reads a plan from YAML. An empty path yields DefaultPlan.
func LoadPlan(path string) (Plan, error) {
	if path == "" {
		return DefaultPlan(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read plan %s: %w", path, err)
	}
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Plan{}, fmt.Errorf("plan %s: %w", path, err)
	}
	return p, nil
}

// Validate rejects plans the runner cannot execute.
func (p Plan) Validate() error {
	if p.Waves <= 0 {
		return errors.New("waves must be positive")
	}
	if p.Speed != 0 && p.Speed != 1 && p.Speed != 2 {
		return fmt.Errorf("speed must be 1 or 2, got %d", p.Speed)
	}
	for i, b := range p.Builds {
		if _, ok := defs.Tower(b.Type); !ok {
			return fmt.Errorf("build %d: unknown tower type %q", i, b.Type)
		}
	}
	return nil
}
