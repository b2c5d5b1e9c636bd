// cmd/simulate/main.go
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"go-bastion-defense/internal/app"
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/logger"
	"go-bastion-defense/internal/utils"

	"gopkg.in/yaml.v3"
)

func main() {
	settingsPath := flag.String("settings", "data/settings.yaml", "path to the settings file")
	loggingPath := flag.String("logging", "data/logging.yaml", "path to the logging config")
	planPath := flag.String("plan", "", "defence plan in YAML, built-in plan if empty")
	flag.Parse()

	logConfig, err := logger.LoadConfig(*loggingPath, logger.DefaultConfig().FileOnly())
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Initialize(logConfig); err != nil {
		log.Fatal(err)
	}
	defer logger.Close()

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}
	plan, err := LoadPlan(*planPath)
	if err != nil {
		log.Fatal(err)
	}
	settings.StartLevel = plan.Level
	levels, err := app.LevelsFor(settings)
	if err != nil {
		log.Fatal(err)
	}

	// Headless прогон: советник всегда на запасных текстах.
	settings.Advisor.Enabled = false
	clock := utils.NewManualClock(time.Date(1450, time.May, 14, 6, 0, 0, 0, time.UTC))
	game, err := app.NewGame(app.Options{
		Settings: settings,
		Levels:   levels,
		Clock:    clock,
		Advisor:  app.NewAdvisor(settings.Advisor, clock),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	report := Simulate(game, clock, plan)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		log.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		log.Fatal(err)
	}
}
