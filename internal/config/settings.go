// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AdvisorSettings configures the text advisor backend.
type AdvisorSettings struct {
	Enabled         bool   `yaml:"enabled"`
	Endpoint        string `yaml:"endpoint"`
	Model           string `yaml:"model"`
	APIKeyEnv       string `yaml:"api_key_env"`
	ThrottleSeconds int    `yaml:"throttle_seconds"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	Seed            int64  `yaml:"seed"`
}

// Throttle returns the minimum spacing between backend calls.
func (a AdvisorSettings) Throttle() time.Duration {
	return time.Duration(a.ThrottleSeconds) * time.Second
}

// Timeout returns the per-call deadline.
func (a AdvisorSettings) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Settings are the tunables read at startup.
type Settings struct {
	StartingGold  int             `yaml:"starting_gold"`
	StartingLives int             `yaml:"starting_lives"`
	StartLevel    int             `yaml:"start_level"`
	LevelsFile    string          `yaml:"levels_file"`
	Advisor       AdvisorSettings `yaml:"advisor"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		StartingGold:  StartingGold,
		StartingLives: StartingLives,
		Advisor: AdvisorSettings{
			Enabled:         true,
			Endpoint:        "https://generativelanguage.googleapis.com/v1beta",
			Model:           "gemini-2.0-flash",
			APIKeyEnv:       "GEMINI_API_KEY",
			ThrottleSeconds: 10,
			TimeoutSeconds:  8,
		},
	}
}

// LoadSettings reads the YAML file at path over DefaultSettings. An empty
// path or a missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("settings %s: %w", path, err)
	}
	return settings, nil
}

// Validate rejects values the simulation cannot start with.
func (s Settings) Validate() error {
	switch {
	case s.StartingGold < 0:
		return fmt.Errorf("starting_gold must not be negative, got %d", s.StartingGold)
	case s.StartingLives <= 0 || s.StartingLives > 100:
		return fmt.Errorf("starting_lives must be in 1..100, got %d", s.StartingLives)
	case s.StartLevel < 0:
		return fmt.Errorf("start_level must not be negative, got %d", s.StartLevel)
	case s.Advisor.ThrottleSeconds < 0 || s.Advisor.TimeoutSeconds < 0:
		return errors.New("advisor durations must not be negative")
	}
	return nil
}
