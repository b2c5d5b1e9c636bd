package system

import (
	"testing"

	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/pkg/geom"
)

func TestMovementFollowsPath(t *testing.T) {
	f := newFixture(0, 100)
	e := f.addEnemy(defs.EnemyScout, 45, geom.Position{})
	e.Speed = 40
	sys := NewMovementSystem(f.ecs, testLevel, f.economy)

	sys.Update()
	if e.Position != (geom.Position{X: 40, Y: 0}) || e.PathIndex != 0 {
		t.Fatalf("after 1 tick: pos %+v index %d", e.Position, e.PathIndex)
	}
	sys.Update()
	sys.Update() // 20 left < 40: snap to the corner
	if e.Position != (geom.Position{X: 100, Y: 0}) || e.PathIndex != 1 {
		t.Fatalf("at corner: pos %+v index %d", e.Position, e.PathIndex)
	}
	if e.Progress != 50 {
		t.Errorf("Progress = %v, want 50", e.Progress)
	}
	sys.Update()
	if e.Position != (geom.Position{X: 100, Y: 40}) {
		t.Errorf("after turning: pos %+v", e.Position)
	}
}

func TestMovementHonoursSpeedMultiplier(t *testing.T) {
	f := newFixture(0, 100)
	f.ecs.GameState.SpeedMultiplier = 2
	e := f.addEnemy(defs.EnemyTank, 180, geom.Position{})
	NewMovementSystem(f.ecs, testLevel, f.economy).Update()
	if e.Position.X != 2 {
		t.Errorf("tank at 2x moved to %v, want 2", e.Position.X)
	}
}

func TestMovementBreach(t *testing.T) {
	tests := []struct {
		name      string
		kind      defs.EnemyKind
		lives     int
		wantLives int
		wantOver  bool
	}{
		{"scout costs five", defs.EnemyScout, 100, 95, false},
		{"boss costs thirty", defs.EnemyBoss, 100, 70, false},
		{"game over at five", defs.EnemyTank, 10, 5, true},
		{"clamped at zero", defs.EnemyBoss, 20, 0, true},
		{"above threshold", defs.EnemyScout, 11, 6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(0, tt.lives)
			e := f.addEnemy(tt.kind, 10, geom.Position{X: 100, Y: 100})
			e.PathIndex = 2
			NewMovementSystem(f.ecs, testLevel, f.economy).Update()

			if !e.IsDead {
				t.Error("enemy at the gate should be dead")
			}
			gs := f.ecs.GameState
			if gs.Lives != tt.wantLives {
				t.Errorf("Lives = %d, want %d", gs.Lives, tt.wantLives)
			}
			if gs.GameOver != tt.wantOver {
				t.Errorf("GameOver = %v, want %v", gs.GameOver, tt.wantOver)
			}
			if f.events.count(event.EnemyBreached) != 1 {
				t.Error("expected one EnemyBreached event")
			}
			if tt.wantOver && f.events.count(event.GameOver) != 1 {
				t.Error("expected one GameOver event")
			}
		})
	}
}

func TestMovementSkipsDead(t *testing.T) {
	f := newFixture(0, 100)
	e := f.addEnemy(defs.EnemyScout, 0, geom.Position{})
	e.IsDead = true
	NewMovementSystem(f.ecs, testLevel, f.economy).Update()
	if e.Position != (geom.Position{}) {
		t.Error("dead enemy moved")
	}
}

func TestMovementSecondaryPath(t *testing.T) {
	level := testLevel
	level.SecondaryPath = geom.Path{{X: 0, Y: 0}, {X: 0, Y: 100}}
	f := newFixture(0, 100)
	e := f.addEnemy(defs.EnemyScout, 45, geom.Position{})
	e.PathType = defs.PathSecondary
	e.Speed = 10
	NewMovementSystem(f.ecs, level, f.economy).Update()
	if e.Position != (geom.Position{X: 0, Y: 10}) {
		t.Errorf("secondary walker at %+v", e.Position)
	}
}
