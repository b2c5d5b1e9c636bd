// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-bastion-defense/internal/app"
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/logger"
	"go-bastion-defense/internal/state"
	"go-bastion-defense/internal/utils"
	"go-bastion-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settingsPath := flag.String("settings", "data/settings.yaml", "path to the settings file")
	loggingPath := flag.String("logging", "data/logging.yaml", "path to the logging config")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	skipMenu := flag.Bool("play", false, "start on the configured level instead of the war map")
	flag.Parse()

	// Консоль занята окном игры, поэтому по умолчанию пишем только в файл.
	logConfig, err := logger.LoadConfig(*loggingPath, logger.DefaultConfig().FileOnly())
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Initialize(logConfig); err != nil {
		log.Fatal(err)
	}
	defer logger.Close()

	if *pprofAddr != "" {
		go func() {
			logger.Error("pprof server stopped", "error", http.ListenAndServe(*pprofAddr, nil))
		}()
	}

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
	fog := render.NewFog(time.Now().UnixNano())
	game, err := app.NewGame(app.Options{
		Settings: settings,
		Levels:   levels,
		Clock:    clock,
		Advisor:  app.NewAdvisor(settings.Advisor, clock),
		Revealer: fog,
	})
	if err != nil {
		logger.Error("Failed to start game", "error", err)
		log.Fatal(err)
	}
	defer game.Close()

	sm := state.NewStateMachine(state.NewContext(game, fog))
	if *skipMenu {
		sm.SetState(state.NewGameState(sm))
	} else {
		sm.SetState(state.NewMenuState(sm))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("The Bastion of Skanderbeg")
	ebiten.SetTPS(config.TicksPerSec)
	if err := ebiten.RunGame(a); err != nil {
		logger.Error("Game loop failed", "error", err)
		log.Fatal(err)
	}
}
