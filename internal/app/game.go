// internal/app/game.go
package app

import (
	"fmt"

	"go-bastion-defense/internal/advisor"
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/entity"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/internal/logger"
	"go-bastion-defense/internal/system"
	"go-bastion-defense/internal/utils"
)

// Options configures a new Game. Zero values fall back to defaults.
type Options struct {
	Settings config.Settings
	Levels   []defs.LevelDefinition
	Clock    utils.Clock
	Advisor  advisor.Advisor
	Revealer system.Revealer
}

// Game owns the registries, the systems and the advisor for one player.
// All methods must be called from the goroutine that calls Update.
type Game struct {
	ECS             *entity.ECS
	Level           defs.LevelDefinition
	EventDispatcher *event.Dispatcher

	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	EconomySystem    *system.EconomySystem
	VisibilitySystem *system.VisibilitySystem

	settings config.Settings
	levels   []defs.LevelDefinition
	unlocked []bool
	clock    utils.Clock
	revealer system.Revealer

	advisor    advisor.Advisor
	runner     *advisor.Runner
	advisorLog *advisor.Log

	selectedType defs.TowerType
	selection    Selection
}

// NewGame builds a session on the configured start level.
func NewGame(opts Options) (*Game, error) {
	if opts.Settings == (config.Settings{}) {
		opts.Settings = config.DefaultSettings()
	}
	if err := opts.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if len(opts.Levels) == 0 {
		opts.Levels = defs.DefaultLevels
	}
	if err := defs.ValidateLevels(opts.Levels); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	start := opts.Settings.StartLevel
	if start >= len(opts.Levels) {
		return nil, fmt.Errorf("new game: start level %d out of range (%d levels)", start, len(opts.Levels))
	}
	if opts.Clock == nil {
		opts.Clock = utils.SystemClock{}
	}
	if opts.Revealer == nil {
		opts.Revealer = system.NopRevealer{}
	}
	if opts.Advisor == nil {
		opts.Advisor = advisor.NewService(advisor.NopGenerator{}, opts.Clock, advisor.DefaultConfig())
	}

	g := &Game{
		EventDispatcher: event.NewDispatcher(),
		settings:        opts.Settings,
		levels:          opts.Levels,
		unlocked:        make([]bool, len(opts.Levels)),
		clock:           opts.Clock,
		revealer:        opts.Revealer,
		advisor:         opts.Advisor,
		advisorLog:      advisor.NewLog(advisor.DefaultLogCap),
		selectedType:    defs.TowerBasic,
	}
	for i := 0; i <= start; i++ {
		g.unlocked[i] = true
	}

	listener := &GameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.WaveStarted, listener)
	g.EventDispatcher.Subscribe(event.WaveEnded, listener)
	g.EventDispatcher.Subscribe(event.LevelCleared, listener)

	g.reset(start)
	return g, nil
}

// reset starts a fresh session on level index. Unlocks and event
// subscriptions survive; everything else is rebuilt.
func (g *Game) reset(index int) {
	if g.runner != nil {
		g.runner.Close()
	}
	g.runner = advisor.NewRunner(g.advisor, 8)
	g.advisorLog.Clear()

	g.Level = g.levels[index]
	g.ECS = entity.NewECS(g.settings.StartingGold, g.settings.StartingLives, index)
	g.EconomySystem = system.NewEconomySystem(g.ECS, g.EventDispatcher, len(g.levels))
	g.WaveSystem = system.NewWaveSystem(g.ECS, g.Level, g.EventDispatcher)
	g.MovementSystem = system.NewMovementSystem(g.ECS, g.Level, g.EconomySystem)
	g.CombatSystem = system.NewCombatSystem(g.ECS, g.EconomySystem, g.EventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(g.ECS)
	g.VisibilitySystem = system.NewVisibilitySystem(g.ECS, g.revealer)
	g.selection = Selection{}

	if r, ok := g.revealer.(interface{ Reset() }); ok {
		r.Reset()
	}
	g.VisibilitySystem.RevealPoint(g.Level.Path.Start().X, g.Level.Path.Start().Y, config.EntryRevealRadius)
	g.VisibilitySystem.RevealPoint(g.Level.Path.End().X, g.Level.Path.End().Y, config.GateRevealRadius)

	logger.Info("Session started", "level", g.Level.ID, "gold", g.ECS.GameState.Gold, "lives", g.ECS.GameState.Lives)
}

// Update advances the simulation by one tick. Advisor results are collected
// even while paused; nothing else moves while paused or after game over.
func (g *Game) Update() {
	g.drainAdvisor()

	gs := g.ECS.GameState
	if gs.Paused || gs.GameOver {
		return
	}
	now := g.clock.Now()

	g.WaveSystem.Update(now)
	g.MovementSystem.Update()
	g.CombatSystem.Update(now)
	g.ProjectileSystem.Update()
	g.ECS.ReapEnemies()
	if g.WaveSystem.CheckCompletion() {
		g.EconomySystem.WaveCompleted(g.ECS.Wave.Number, g.Level)
	}
	g.VisibilitySystem.Update()
}

// Close stops outstanding advisor requests.
func (g *Game) Close() {
	if g.runner != nil {
		g.runner.Close()
	}
}

func (g *Game) drainAdvisor() {
	for _, res := range g.runner.Drain() {
		if res.Kind == advisor.EntrySummary {
			g.ECS.Wave.SummaryRequested = false
		}
		g.advisorLog.Add(advisor.Entry{Kind: res.Kind, Wave: res.Wave, Text: res.Text, At: g.clock.Now()})
	}
}

// GameEventListener reacts to simulation events that need the facade.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveData); ok {
			g.runner.RequestWave(data.Number)
		}
	case event.WaveEnded:
		if g.ECS.Wave.SummaryRequested {
			return
		}
		g.ECS.Wave.SummaryRequested = true
		gs := g.ECS.GameState
		g.runner.RequestSummary(advisor.State{Wave: gs.Wave, Gold: gs.Gold, Lives: gs.Lives})
	case event.LevelCleared:
		if data, ok := e.Data.(event.LevelData); ok && data.Unlocked >= 0 && data.Unlocked < len(g.unlocked) {
			g.unlocked[data.Unlocked] = true
		}
	}
}
