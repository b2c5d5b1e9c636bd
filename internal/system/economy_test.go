package system

import (
	"testing"

	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/event"
)

func TestSpend(t *testing.T) {
	f := newFixture(550, 100)
	if !f.economy.Spend(100) || f.ecs.GameState.Gold != 450 {
		t.Fatalf("gold = %d after spending 100", f.ecs.GameState.Gold)
	}
	if f.economy.Spend(451) {
		t.Error("overspend accepted")
	}
	if f.economy.Spend(-10) {
		t.Error("negative spend accepted")
	}
	if f.ecs.GameState.Gold != 450 {
		t.Errorf("gold changed by rejected spends: %d", f.ecs.GameState.Gold)
	}
	if !f.economy.Spend(450) || f.ecs.GameState.Gold != 0 {
		t.Error("spending the exact balance should succeed")
	}
}

func TestWaveCompletedClearsLevel(t *testing.T) {
	f := newFixture(550, 100)
	level := defs.DefaultLevels[0]

	f.economy.WaveCompleted(level.WavesToUnlock-1, level)
	if f.ecs.GameState.LevelCleared {
		t.Fatal("cleared too early")
	}
	f.economy.WaveCompleted(level.WavesToUnlock, level)
	if !f.ecs.GameState.LevelCleared {
		t.Fatal("level not cleared")
	}
	f.economy.WaveCompleted(level.WavesToUnlock+1, level)
	if f.events.count(event.LevelCleared) != 1 {
		t.Errorf("LevelCleared fired %d times", f.events.count(event.LevelCleared))
	}
	data := f.events.events[len(f.events.events)-1].Data.(event.LevelData)
	if data.Index != 0 || data.Unlocked != 1 {
		t.Errorf("unexpected payload %+v", data)
	}
}

func TestWaveCompletedLastLevel(t *testing.T) {
	f := newFixture(550, 100)
	f.ecs.GameState.LevelIndex = len(defs.DefaultLevels) - 1
	level := defs.DefaultLevels[f.ecs.GameState.LevelIndex]
	f.economy.WaveCompleted(level.WavesToUnlock, level)
	data := f.events.events[len(f.events.events)-1].Data.(event.LevelData)
	if data.Unlocked != -1 {
		t.Errorf("last level should unlock nothing, got %d", data.Unlocked)
	}
}
