package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go-bastion-defense/internal/advisor"
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/utils"
	"go-bastion-defense/pkg/geom"
)

const tick = 16 * time.Millisecond

// shortLevels run straight along y=300; the second level is unlocked by
// surviving one wave of the first.
var shortLevels = []defs.LevelDefinition{
	{ID: "first", Name: "First", WavesToUnlock: 1, Path: geom.Path{{X: 0, Y: 300}, {X: 100, Y: 300}}},
	{ID: "second", Name: "Second", WavesToUnlock: 1, Path: geom.Path{{X: 0, Y: 200}, {X: 100, Y: 200}}},
}

type reveal struct{ x, y, r float64 }

type recordingRevealer struct {
	calls  []reveal
	resets int
}

func (r *recordingRevealer) Reset() {
	r.resets++
}

func (r *recordingRevealer) RevealArea(x, y, radius float64) {
	r.calls = append(r.calls, reveal{x, y, radius})
}

type testGame struct {
	*Game
	clock    *utils.ManualClock
	revealer *recordingRevealer
}

func newTestGame(t *testing.T, mutate func(*Options)) *testGame {
	t.Helper()
	clock := utils.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	rev := &recordingRevealer{}
	opts := Options{
		Settings: config.DefaultSettings(),
		Levels:   shortLevels,
		Clock:    clock,
		Revealer: rev,
		Advisor:  advisor.NewService(advisor.NopGenerator{}, clock, advisor.Config{Throttle: 10 * time.Second, Seed: 1}),
	}
	if mutate != nil {
		mutate(&opts)
	}
	g, err := NewGame(opts)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(g.Close)
	return &testGame{Game: g, clock: clock, revealer: rev}
}

// run advances the clock and the simulation n ticks.
func (tg *testGame) run(n int) {
	for i := 0; i < n; i++ {
		tg.clock.Advance(tick)
		tg.Update()
	}
}

// runUntil ticks until done reports true or limit ticks have passed.
func (tg *testGame) runUntil(limit int, done func() bool) bool {
	for i := 0; i < limit; i++ {
		if done() {
			return true
		}
		tg.run(1)
	}
	return done()
}

func TestNewGameDefaults(t *testing.T) {
	tg := newTestGame(t, nil)
	gs := tg.ECS.GameState
	if gs.Gold != 550 || gs.Lives != 100 || gs.Wave != 0 || !gs.Paused {
		t.Errorf("unexpected initial state %+v", gs)
	}
	if !tg.Unlocked(0) || tg.Unlocked(1) {
		t.Error("only the first level should start unlocked")
	}
	if len(tg.revealer.calls) != 2 {
		t.Fatalf("expected entry and gate reveals, got %v", tg.revealer.calls)
	}
	if tg.revealer.calls[0] != (reveal{0, 300, config.EntryRevealRadius}) {
		t.Errorf("entry reveal = %v", tg.revealer.calls[0])
	}
}

func TestNewGameRejectsBadOptions(t *testing.T) {
	s := config.DefaultSettings()
	s.StartLevel = 9
	if _, err := NewGame(Options{Settings: s, Levels: shortLevels}); err == nil {
		t.Error("expected error for out of range start level")
	}
	bad := []defs.LevelDefinition{{ID: "x", Path: geom.Path{{X: 0, Y: 0}}}}
	if _, err := NewGame(Options{Levels: bad}); err == nil {
		t.Error("expected error for a one-point path")
	}
}

func TestPlaceUpgradeRemove(t *testing.T) {
	tg := newTestGame(t, nil)
	gs := tg.ECS.GameState

	id, ok := tg.PlaceTower(50, 250)
	if !ok {
		t.Fatal("placement rejected")
	}
	if gs.Gold != 450 {
		t.Errorf("gold after Basic = %d, want 450", gs.Gold)
	}
	tower, _ := tg.ECS.Tower(id)
	if tower.Level != 1 || tower.TargetingMode != defs.TargetFirst || tower.TotalInvested != 100 {
		t.Errorf("new tower %+v", tower)
	}
	last := tg.revealer.calls[len(tg.revealer.calls)-1]
	if last != (reveal{50, 250, 170 + 90}) {
		t.Errorf("placement reveal = %v", last)
	}

	cost, ok := tg.UpgradeCost(id)
	if !ok || cost != 150 {
		t.Fatalf("UpgradeCost = %d, %v; want 150", cost, ok)
	}
	if !tg.UpgradeTower(id) {
		t.Fatal("upgrade rejected")
	}
	if gs.Gold != 300 {
		t.Errorf("gold after upgrade = %d, want 300", gs.Gold)
	}
	if tower.Level != 2 || tower.Damage != 19 || tower.Range != 190 || tower.Cooldown != 585 || tower.TotalInvested != 250 {
		t.Errorf("upgraded tower %+v", tower)
	}

	if !tg.RemoveTower(id) {
		t.Fatal("removal rejected")
	}
	if gs.Gold != 300+187 {
		t.Errorf("gold after refund = %d, want %d", gs.Gold, 300+187)
	}
	if _, ok := tg.ECS.Tower(id); ok {
		t.Error("tower still registered")
	}
	if tg.RemoveTower(id) {
		t.Error("second removal accepted")
	}
}

func TestPlacementRejected(t *testing.T) {
	tg := newTestGame(t, nil)

	if tg.CanPlaceAt(50, 300) {
		t.Error("segment midpoint should be blocked")
	}
	if tg.CanPlaceAt(50, 266) {
		t.Error("34 units from the midpoint should be blocked")
	}
	if !tg.CanPlaceAt(50, 265) {
		t.Error("35 units from the midpoint should be allowed")
	}
	if _, ok := tg.PlaceTower(50, 300); ok {
		t.Error("placement on the path accepted")
	}

	tg.SelectTowerType(defs.TowerPulse)
	tg.PlaceTower(400, 100)
	if _, ok := tg.PlaceTower(400, 500); ok {
		t.Error("placement without gold accepted")
	}
	if tg.ECS.GameState.Gold != 150 {
		t.Errorf("gold = %d, rejected placement must not charge", tg.ECS.GameState.Gold)
	}
}

func TestUpgradeAtMaxLevelIsNoop(t *testing.T) {
	tg := newTestGame(t, func(o *Options) { o.Settings.StartingGold = 100000 })
	id, _ := tg.PlaceTower(400, 100)
	for i := 0; i < defs.MaxTowerLevel-1; i++ {
		if !tg.UpgradeTower(id) {
			t.Fatalf("upgrade %d rejected", i+1)
		}
	}
	tower, _ := tg.ECS.Tower(id)
	before := *tower
	gold := tg.ECS.GameState.Gold

	if tg.UpgradeTower(id) {
		t.Error("upgrade past max level accepted")
	}
	if *tower != before || tg.ECS.GameState.Gold != gold {
		t.Error("rejected upgrade changed state")
	}
	if _, ok := tg.UpgradeCost(id); ok {
		t.Error("UpgradeCost should report false at max level")
	}
}

func TestUpgradeCooldownFloor(t *testing.T) {
	tg := newTestGame(t, func(o *Options) { o.Settings.StartingGold = 1000000 })
	tg.SelectTowerType(defs.TowerBasic)
	id, _ := tg.PlaceTower(400, 100)
	tower, _ := tg.ECS.Tower(id)
	tower.Cooldown = 105
	tg.UpgradeTower(id)
	if tower.Cooldown != defs.MinCooldownMs {
		t.Errorf("cooldown = %d, want floor %d", tower.Cooldown, defs.MinCooldownMs)
	}
}

func TestSetTargetingMode(t *testing.T) {
	tg := newTestGame(t, nil)
	id, _ := tg.PlaceTower(400, 100)
	if !tg.SetTargetingMode(id, defs.TargetWeakest) {
		t.Fatal("mode change rejected")
	}
	if tower, _ := tg.ECS.Tower(id); tower.TargetingMode != defs.TargetWeakest {
		t.Errorf("mode = %s", tower.TargetingMode)
	}
	if tg.SetTargetingMode(id, "SIDEWAYS") || tg.SetTargetingMode(999, defs.TargetLast) {
		t.Error("invalid mode or tower accepted")
	}
}

func TestHandleClick(t *testing.T) {
	tg := newTestGame(t, nil)

	sel := tg.HandleClick(400, 100)
	if sel.Kind != SelectedTower || len(tg.ECS.Towers) != 1 {
		t.Fatalf("click on empty ground: %+v, towers %d", sel, len(tg.ECS.Towers))
	}
	towerID := sel.ID

	sel = tg.HandleClick(410, 110)
	if sel.Kind != SelectedTower || sel.ID != towerID || len(tg.ECS.Towers) != 1 {
		t.Errorf("click near tower should select it, got %+v with %d towers", sel, len(tg.ECS.Towers))
	}

	tg.StartWave()
	tg.runUntil(200, func() bool { return len(tg.ECS.Enemies) > 0 })
	e := tg.ECS.Enemies[0]
	sel = tg.HandleClick(e.Position.X+5, e.Position.Y)
	if sel.Kind != SelectedEnemy || sel.ID != e.ID {
		t.Errorf("click on enemy: %+v", sel)
	}

	tg.ClearSelection()
	if tg.Selection().Kind != SelectedNone {
		t.Error("selection not cleared")
	}
}

func TestSpeedAndPause(t *testing.T) {
	tg := newTestGame(t, nil)
	if tg.SetSpeed(3) {
		t.Error("3x accepted")
	}
	if tg.ToggleSpeed() != 2 || tg.ToggleSpeed() != 1 {
		t.Error("ToggleSpeed should alternate 2 and 1")
	}
	tg.TogglePause()
	if tg.ECS.GameState.Paused {
		t.Error("TogglePause did not unpause")
	}
}

func TestPausedTickDoesNothing(t *testing.T) {
	tg := newTestGame(t, nil)
	tg.StartWave()
	tg.runUntil(200, func() bool { return len(tg.ECS.Enemies) > 0 })
	tg.TogglePause()
	e := tg.ECS.Enemies[0]
	pos := e.Position
	tg.run(50)
	if e.Position != pos || len(tg.ECS.Enemies) != 1 {
		t.Error("simulation advanced while paused")
	}
}

func TestWaveLifecycleAndAdvisor(t *testing.T) {
	tg := newTestGame(t, nil)
	if !tg.StartWave() {
		t.Fatal("StartWave rejected")
	}
	if tg.StartWave() {
		t.Error("second StartWave accepted during a wave")
	}
	tg.runner.Wait() // deliver the wave description before the summary

	w := tg.ECS.Wave
	completed := tg.runUntil(20000, func() bool {
		if !w.InProgress && (w.EnemiesToSpawn > 0 || len(tg.ECS.Enemies) > 0) {
			t.Fatal("wave completed early")
		}
		return !w.InProgress
	})
	if !completed {
		t.Fatal("wave never completed")
	}

	gs := tg.ECS.GameState
	// 13 undefended scouts breach for 5 lives each.
	if gs.Lives != 100-13*5 || !gs.Paused || gs.GameOver {
		t.Errorf("after wave 1: %+v", gs)
	}
	if !w.SummaryRequested {
		t.Error("summary should be requested on completion")
	}

	tg.runner.Wait()
	tg.Update()
	log := tg.AdvisorLog()
	if len(log) != 2 {
		t.Fatalf("advisor log has %d entries, want 2", len(log))
	}
	if log[0].Kind != advisor.EntrySummary || log[1].Kind != advisor.EntryWave {
		t.Errorf("log order = %s, %s", log[0].Kind, log[1].Kind)
	}
	if log[1].Text != advisor.FallbackWave(1) {
		t.Errorf("wave text = %q", log[1].Text)
	}
	if w.SummaryRequested {
		t.Error("summary flag should clear once the result arrives")
	}
}

func TestLevelClearedUnlocksNext(t *testing.T) {
	tg := newTestGame(t, nil)
	if tg.SelectLevel(1) {
		t.Fatal("locked level selected")
	}
	tg.StartWave()
	tg.runUntil(20000, func() bool { return !tg.ECS.Wave.InProgress })

	if !tg.ECS.GameState.LevelCleared || !tg.Unlocked(1) {
		t.Fatal("surviving the required wave should clear the level and unlock the next")
	}
	if !tg.SelectLevel(1) {
		t.Fatal("unlocked level rejected")
	}
	gs := tg.ECS.GameState
	if tg.Level.ID != "second" || gs.LevelIndex != 1 || gs.Wave != 0 || gs.Gold != 550 {
		t.Errorf("new session: level %s state %+v", tg.Level.ID, gs)
	}
	if len(tg.AdvisorLog()) != 0 {
		t.Error("advisor log should reset with the session")
	}
	if tg.SelectLevel(5) || tg.SelectLevel(-1) {
		t.Error("out of range level selected")
	}
}

func TestGameOverFreezesUntilRestart(t *testing.T) {
	tg := newTestGame(t, func(o *Options) { o.Settings.StartingLives = 10 })
	tg.StartWave()
	over := tg.runUntil(20000, func() bool { return tg.ECS.GameState.GameOver })
	if !over {
		t.Fatal("game never ended")
	}
	gs := tg.ECS.GameState
	if gs.Lives != 5 {
		t.Errorf("lives = %d, want 5", gs.Lives)
	}

	remaining := tg.ECS.Wave.EnemiesToSpawn
	tg.run(500)
	if tg.ECS.Wave.EnemiesToSpawn != remaining {
		t.Error("spawner ran after game over")
	}
	tg.TogglePause()
	if _, ok := tg.PlaceTower(400, 100); ok {
		t.Error("placement accepted after game over")
	}

	tg.Restart()
	gs = tg.ECS.GameState
	if gs.GameOver || gs.Lives != 10 || gs.Wave != 0 || len(tg.ECS.Enemies) != 0 {
		t.Errorf("after restart: %+v", gs)
	}
	if !tg.StartWave() {
		t.Error("StartWave rejected after restart")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	tg := newTestGame(t, nil)
	id, _ := tg.PlaceTower(400, 100)
	snap := tg.Snapshot()
	if len(snap.Towers) != 1 || snap.Gold != 450 {
		t.Fatalf("snapshot %+v", snap)
	}
	snap.Towers[0].Level = 5
	if tower, _ := tg.ECS.Tower(id); tower.Level != 1 {
		t.Error("mutating the snapshot changed the game")
	}
	if got, ok := snap.Tower(id); !ok || got.ID != id {
		t.Error("Snapshot.Tower lookup failed")
	}
	if snap.Selection.Kind != SelectedNone {
		t.Error("PlaceTower alone should not select")
	}
}

func TestRestartResetsFog(t *testing.T) {
	tg := newTestGame(t, nil)
	if tg.revealer.resets != 1 {
		t.Fatalf("resets after NewGame = %d, want 1", tg.revealer.resets)
	}
	tg.Restart()
	if tg.revealer.resets != 2 {
		t.Errorf("resets after Restart = %d, want 2", tg.revealer.resets)
	}
	last := tg.revealer.calls[len(tg.revealer.calls)-1]
	if last.r != config.GateRevealRadius {
		t.Errorf("gate should be revealed again after restart, last call %+v", last)
	}
}

func TestNewAdvisorWithoutKeyFallsBack(t *testing.T) {
	s := config.DefaultSettings().Advisor
	s.APIKeyEnv = "BASTION_TEST_UNSET_KEY"
	t.Setenv(s.APIKeyEnv, "")

	svc := NewAdvisor(s, utils.NewManualClock(time.Now()))
	if got := svc.DescribeWave(context.Background(), 3); got != advisor.FallbackWave(3) {
		t.Errorf("DescribeWave = %q, want fallback %q", got, advisor.FallbackWave(3))
	}
}

func TestLevelsFor(t *testing.T) {
	s := config.DefaultSettings()
	levels, err := LevelsFor(s)
	if err != nil || len(levels) != len(defs.DefaultLevels) {
		t.Fatalf("LevelsFor default = %d levels, %v", len(levels), err)
	}
	s.LevelsFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := LevelsFor(s); err == nil {
		t.Error("missing levels file should be an error")
	}
}
