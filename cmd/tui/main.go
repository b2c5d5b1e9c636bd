// cmd/tui/main.go
package main

import (
	"flag"
	"log"

	"go-bastion-defense/internal/app"
	"go-bastion-defense/internal/audio"
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/logger"
	"go-bastion-defense/internal/utils"
	"go-bastion-defense/pkg/fog"

	"github.com/gdamore/tcell/v2"
)

// Ячейка тумана 8x8 единиц холста, терминал всё равно грубее.
const (
	fogCols = config.CanvasWidth / 8
	fogRows = config.CanvasHeight / 8
)

func main() {
	settingsPath := flag.String("settings", "data/settings.yaml", "path to the settings file")
	loggingPath := flag.String("logging", "data/logging.yaml", "path to the logging config")
	mute := flag.Bool("mute", false, "start without sound")
	flag.Parse()

	// Терминал занят экраном, поэтому только файл.
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
		logger.Error("Failed to load settings", "error", err)
		log.Fatal(err)
	}
	levels, err := app.LevelsFor(settings)
	if err != nil {
		logger.Error("Failed to load levels", "error", err)
		log.Fatal(err)
	}

	clock := utils.SystemClock{}
	grid := fog.NewGrid(config.CanvasWidth, config.CanvasHeight, fogCols, fogRows)
	game, err := app.NewGame(app.Options{
		Settings: settings,
		Levels:   levels,
		Clock:    clock,
		Advisor:  app.NewAdvisor(settings.Advisor, clock),
		Revealer: grid,
	})
	if err != nil {
		logger.Error("Failed to start game", "error", err)
		log.Fatal(err)
	}
	defer game.Close()

	player := audio.NewPlayer()
	if err := player.Initialize(); err != nil {
		// Без звуковой карты играем молча
		logger.Warning("Audio disabled", "error", err)
	}
	defer player.Close()
	player.SetMuted(*mute)
	player.Subscribe(game.EventDispatcher)

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("Failed to create screen", "error", err)
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		logger.Error("Failed to init screen", "error", err)
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	w, h := screen.Size()
	logger.Info("Terminal client started", "cols", w, "rows", h, "level", game.Level.ID)

	NewClient(screen, game, grid, player).Run()
	logger.Info("Terminal client stopped")
}
