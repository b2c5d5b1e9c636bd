package system

import (
	"testing"
	"time"

	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/pkg/geom"
)

func TestCooldownSpacing(t *testing.T) {
	tests := []struct {
		speed int
		gap   time.Duration
	}{
		{1, 650 * time.Millisecond},
		{2, 325 * time.Millisecond},
	}
	for _, tt := range tests {
		f := newFixture(0, 100)
		f.ecs.GameState.SpeedMultiplier = tt.speed
		tower := f.addTower(defs.TowerBasic, geom.Position{}, defs.TargetFirst)
		enemy := f.addEnemy(defs.EnemyBoss, 1e6, geom.Position{X: 50})
		sys := NewCombatSystem(f.ecs, f.economy, f.dispatcher)

		sys.Update(epoch)
		sys.Update(epoch.Add(tt.gap - time.Millisecond))
		if got := 1e6 - enemy.HP; got != 15 {
			t.Errorf("speed %d: damage before cooldown = %v, want 15", tt.speed, got)
		}
		sys.Update(epoch.Add(tt.gap))
		if got := 1e6 - enemy.HP; got != 30 {
			t.Errorf("speed %d: damage after cooldown = %v, want 30", tt.speed, got)
		}
		if !tower.LastFired.Equal(epoch.Add(tt.gap)) {
			t.Errorf("speed %d: LastFired = %v", tt.speed, tower.LastFired)
		}
	}
}

func TestRangeIsInclusive(t *testing.T) {
	f := newFixture(0, 100)
	f.addTower(defs.TowerBasic, geom.Position{}, defs.TargetClosest)
	onEdge := f.addEnemy(defs.EnemyScout, 100, geom.Position{X: 170})
	outside := f.addEnemy(defs.EnemyScout, 100, geom.Position{X: 170.5})
	NewCombatSystem(f.ecs, f.economy, f.dispatcher).Update(epoch)
	if onEdge.HP != 85 || outside.HP != 100 {
		t.Errorf("edge hp %v, outside hp %v", onEdge.HP, outside.HP)
	}
}

func TestSelectTarget(t *testing.T) {
	tower := &component.Tower{Position: geom.Position{}, Range: 200}
	a := &component.Enemy{ID: 1, HP: 50, Progress: 10, Position: geom.Position{X: 100}}
	b := &component.Enemy{ID: 2, HP: 90, Progress: 60, Position: geom.Position{X: 150}}
	c := &component.Enemy{ID: 3, HP: 20, Progress: 30, Position: geom.Position{X: 20}}
	far := &component.Enemy{ID: 4, HP: 999, Progress: 99, Position: geom.Position{X: 500}}
	dead := &component.Enemy{ID: 5, HP: 1, Progress: 0, Position: geom.Position{X: 5}, IsDead: true}
	enemies := []*component.Enemy{a, b, c, far, dead}

	tests := []struct {
		mode defs.TargetingMode
		want *component.Enemy
	}{
		{defs.TargetFirst, b},
		{defs.TargetLast, a},
		{defs.TargetStrongest, b},
		{defs.TargetWeakest, c},
		{defs.TargetClosest, c},
		{defs.TargetingMode("UNKNOWN"), c},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			tower.TargetingMode = tt.mode
			if got := SelectTarget(tower, enemies); got != tt.want {
				t.Errorf("SelectTarget = %d, want %d", got.ID, tt.want.ID)
			}
		})
	}

	if SelectTarget(tower, []*component.Enemy{far, dead}) != nil {
		t.Error("no target expected when nothing living is in range")
	}
}

func TestStrongestTieGoesToRegistryOrder(t *testing.T) {
	f := newFixture(0, 100)
	f.addTower(defs.TowerBasic, geom.Position{}, defs.TargetStrongest)
	first := f.addEnemy(defs.EnemyTank, 100, geom.Position{X: 80})
	second := f.addEnemy(defs.EnemyTank, 100, geom.Position{X: 40})
	NewCombatSystem(f.ecs, f.economy, f.dispatcher).Update(epoch)
	if first.HP != 85 || second.HP != 100 {
		t.Errorf("first hp %v, second hp %v; tie should go to the first registered", first.HP, second.HP)
	}
}

func TestKillRewards(t *testing.T) {
	for _, reinforcement := range []bool{false, true} {
		f := newFixture(100, 100)
		f.addTower(defs.TowerSniper, geom.Position{}, defs.TargetFirst)
		e := f.addEnemy(defs.EnemyScout, 10, geom.Position{X: 50})
		e.IsReinforcement = reinforcement
		NewCombatSystem(f.ecs, f.economy, f.dispatcher).Update(epoch)

		want := 130
		if reinforcement {
			want = 145
		}
		if !e.IsDead {
			t.Errorf("reinforcement=%v: enemy survived", reinforcement)
		}
		if f.ecs.GameState.Gold != want {
			t.Errorf("reinforcement=%v: gold = %d, want %d", reinforcement, f.ecs.GameState.Gold, want)
		}
		if f.events.count(event.EnemyKilled) != 1 {
			t.Errorf("reinforcement=%v: expected one EnemyKilled", reinforcement)
		}
	}
}

func TestOneShotPerTowerPerTick(t *testing.T) {
	f := newFixture(0, 100)
	f.addTower(defs.TowerPulse, geom.Position{}, defs.TargetFirst)
	a := f.addEnemy(defs.EnemyTank, 100, geom.Position{X: 10})
	b := f.addEnemy(defs.EnemyTank, 100, geom.Position{X: 20})
	NewCombatSystem(f.ecs, f.economy, f.dispatcher).Update(epoch)

	hits := 0
	for _, e := range []*component.Enemy{a, b} {
		if e.HP < 100 {
			hits++
		}
	}
	if hits != 1 || len(f.ecs.Projectiles) != 1 {
		t.Errorf("hits = %d, projectiles = %d; want 1 and 1", hits, len(f.ecs.Projectiles))
	}
	p := f.ecs.Projectiles[0]
	if p.Speed != defs.ProjectileSpeed || p.Position != (geom.Position{}) {
		t.Errorf("unexpected projectile %+v", p)
	}
}

func TestDeadEnemyNotTargetedTwice(t *testing.T) {
	f := newFixture(0, 100)
	f.addTower(defs.TowerSniper, geom.Position{}, defs.TargetFirst)
	f.addTower(defs.TowerSniper, geom.Position{X: 10}, defs.TargetFirst)
	e := f.addEnemy(defs.EnemyScout, 45, geom.Position{X: 50})
	NewCombatSystem(f.ecs, f.economy, f.dispatcher).Update(epoch)
	if f.ecs.GameState.Gold != 30 {
		t.Errorf("gold = %d, reward should be paid once", f.ecs.GameState.Gold)
	}
	if e.HP != 45-65 {
		t.Errorf("hp = %v, second tower should not fire at a dead enemy", e.HP)
	}
}
