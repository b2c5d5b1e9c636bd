// cmd/simulate/runner.go
package main

import (
	"time"

	"go-bastion-defense/internal/app"
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/internal/logger"
	"go-bastion-defense/internal/types"
	"go-bastion-defense/internal/utils"
)

// maxWaveTicks ограничивает волну десятью минутами игрового времени.
const maxWaveTicks = config.TicksPerSec * 600

const tick = time.Second / config.TicksPerSec

// WaveReport is the outcome of one wave.
type WaveReport struct {
	Wave     int            `yaml:"wave"`
	Ticks    int            `yaml:"ticks"`
	Kills    map[string]int `yaml:"kills,omitempty"`
	Breaches map[string]int `yaml:"breaches,omitempty"`
	Shots    int            `yaml:"shots"`
	Gold     int            `yaml:"gold"`
	Lives    int            `yaml:"lives"`
	Towers   int            `yaml:"towers"`
}

// Report is the outcome of a whole plan.
type Report struct {
	Level        string       `yaml:"level"`
	WavesFought  int          `yaml:"waves_fought"`
	LevelCleared bool         `yaml:"level_cleared"`
	GameOver     bool         `yaml:"game_over"`
	Gold         int          `yaml:"gold"`
	Lives        int          `yaml:"lives"`
	Skipped      []int        `yaml:"skipped_builds,omitempty"` // индексы построек, на которые не хватило места или золота
	Waves        []WaveReport `yaml:"waves"`
}

// tally считает события текущей волны.
type tally struct {
	current WaveReport
}

func (t *tally) reset(wave int) {
	t.current = WaveReport{Wave: wave, Kills: map[string]int{}, Breaches: map[string]int{}}
}

func (t *tally) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if d, ok := e.Data.(event.EnemyData); ok {
			t.current.Kills[string(d.Kind)]++
		}
	case event.EnemyBreached:
		if d, ok := e.Data.(event.EnemyData); ok {
			t.current.Breaches[string(d.Kind)]++
		}
	case event.TowerFired:
		t.current.Shots++
	}
}

// Simulate plays plan against game, stepping clock one tick per update.
func Simulate(game *app.Game, clock *utils.ManualClock, plan Plan) Report {
	t := &tally{}
	game.EventDispatcher.SubscribeAll(t, event.EnemyKilled, event.EnemyBreached, event.TowerFired)
	if plan.Speed != 0 {
		game.SetSpeed(plan.Speed)
	}

	report := Report{Level: game.Level.ID}
	next := 0
	var built []types.EntityID

	for wave := 1; wave <= plan.Waves; wave++ {
		next, built = buildQueued(game, plan, next, built, &report)
		if plan.Upgrade && next >= len(plan.Builds) {
			upgradeAll(game, built)
		}

		if !game.StartWave() {
			break
		}
		t.reset(game.ECS.GameState.Wave)
		ticks := 0
		for game.ECS.Wave.InProgress && !game.ECS.GameState.GameOver && ticks < maxWaveTicks {
			clock.Advance(tick)
			game.Update()
			ticks++
		}

		gs := game.ECS.GameState
		t.current.Ticks = ticks
		t.current.Gold = gs.Gold
		t.current.Lives = gs.Lives
		t.current.Towers = len(game.ECS.Towers)
		report.Waves = append(report.Waves, t.current)
		report.WavesFought = wave
		logger.Debug("Simulated wave", "wave", gs.Wave, "ticks", ticks, "gold", gs.Gold, "lives", gs.Lives)

		if gs.GameOver {
			break
		}
		if ticks >= maxWaveTicks {
			logger.Warning("Wave did not finish", "wave", gs.Wave)
			break
		}
	}

	gs := game.ECS.GameState
	report.Gold = gs.Gold
	report.Lives = gs.Lives
	report.GameOver = gs.GameOver
	report.LevelCleared = gs.LevelCleared
	return report
}

// buildQueued places builds in plan order until one is unaffordable. Builds
// on forbidden ground are skipped for good.
func buildQueued(game *app.Game, plan Plan, next int, built []types.EntityID, report *Report) (int, []types.EntityID) {
	for next < len(plan.Builds) {
		b := plan.Builds[next]
		if !game.CanPlaceAt(b.X, b.Y) {
			report.Skipped = append(report.Skipped, next)
			next++
			continue
		}
		def, _ := defs.Tower(b.Type)
		if game.ECS.GameState.Gold < def.Cost {
			break
		}
		game.SelectTowerType(b.Type)
		id, ok := game.PlaceTower(b.X, b.Y)
		if !ok {
			report.Skipped = append(report.Skipped, next)
			next++
			continue
		}
		if b.Mode != "" {
			game.SetTargetingMode(id, b.Mode)
		}
		built = append(built, id)
		next++
	}
	return next, built
}

// upgradeAll поднимает башни по кругу, пока хватает золота.
func upgradeAll(game *app.Game, built []types.EntityID) {
	for upgraded := true; upgraded; {
		upgraded = false
		for _, id := range built {
			if game.UpgradeTower(id) {
				upgraded = true
			}
		}
	}
}
