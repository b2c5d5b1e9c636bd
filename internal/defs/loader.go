// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// levelsFile wraps the level list for YAML parsing.
type levelsFile struct {
	Levels []LevelDefinition `yaml:"levels"`
}

// LoadLevels reads a level list from a YAML file and validates it.
func LoadLevels(path string) ([]LevelDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels file: %w", err)
	}

	var file levelsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal levels: %w", err)
	}

	if err := ValidateLevels(file.Levels); err != nil {
		return nil, err
	}
	return file.Levels, nil
}

// ValidateLevels checks that every level can be played.
func ValidateLevels(levels []LevelDefinition) error {
	if len(levels) == 0 {
		return fmt.Errorf("no levels defined")
	}
	for i, l := range levels {
		if len(l.Path) < 2 {
			return fmt.Errorf("level %d (%s): path needs at least 2 waypoints, got %d", i, l.ID, len(l.Path))
		}
		if len(l.SecondaryPath) == 1 {
			return fmt.Errorf("level %d (%s): secondary path needs at least 2 waypoints", i, l.ID)
		}
		if l.WavesToUnlock <= 0 {
			return fmt.Errorf("level %d (%s): waves_to_unlock must be positive", i, l.ID)
		}
	}
	return nil
}
