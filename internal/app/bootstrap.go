// internal/app/bootstrap.go
package app

import (
	"fmt"
	"net/http"

	"go-bastion-defense/internal/advisor"
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/logger"
	"go-bastion-defense/internal/utils"
)

// NewAdvisor builds the advisor described by s. A disabled advisor or an
// unset API key gives the fallback-only service.
func NewAdvisor(s config.AdvisorSettings, clock utils.Clock) *advisor.Service {
	var gen advisor.Generator = advisor.NopGenerator{}
	if s.Enabled {
		gen = advisor.NewGenerator(s.Endpoint, s.Model, s.APIKeyEnv, &http.Client{Timeout: s.Timeout()})
	}
	if _, remote := gen.(*advisor.HTTPGenerator); remote {
		logger.Info("Advisor backend enabled", "model", s.Model)
	} else {
		logger.Info("Advisor running on fallback text")
	}
	return advisor.NewService(gen, clock, advisor.Config{
		Throttle: s.Throttle(),
		Timeout:  s.Timeout(),
		Seed:     s.Seed,
	})
}

// LevelsFor returns the campaign named by s.LevelsFile, or the built-in
// one when no file is configured.
func LevelsFor(s config.Settings) ([]defs.LevelDefinition, error) {
	if s.LevelsFile == "" {
		return defs.DefaultLevels, nil
	}
	levels, err := defs.LoadLevels(s.LevelsFile)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	return levels, nil
}
