package system

import (
	"testing"

	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/pkg/geom"
)

func TestProjectileFliesAndExpires(t *testing.T) {
	f := newFixture(0, 100)
	target := f.addEnemy(defs.EnemyTank, 100, geom.Position{X: 40})
	f.ecs.AddProjectile(&component.Projectile{ID: f.ecs.NewEntity(), TargetID: target.ID, Speed: 15})
	sys := NewProjectileSystem(f.ecs)

	sys.Update()
	if len(f.ecs.Projectiles) != 1 || f.ecs.Projectiles[0].Position.X != 15 {
		t.Fatalf("after 1 tick: %+v", f.ecs.Projectiles)
	}
	sys.Update()
	if f.ecs.Projectiles[0].Position.X != 30 {
		t.Fatalf("after 2 ticks: %+v", f.ecs.Projectiles[0])
	}
	sys.Update() // 10 left < 15
	if len(f.ecs.Projectiles) != 0 {
		t.Error("projectile within one step of its target should be removed")
	}
}

func TestProjectileDroppedWhenTargetGone(t *testing.T) {
	f := newFixture(0, 100)
	target := f.addEnemy(defs.EnemyScout, 0, geom.Position{X: 300})
	target.IsDead = true
	keep := f.addEnemy(defs.EnemyScout, 45, geom.Position{X: 300})
	f.ecs.AddProjectile(&component.Projectile{ID: f.ecs.NewEntity(), TargetID: target.ID, Speed: 15})
	f.ecs.AddProjectile(&component.Projectile{ID: f.ecs.NewEntity(), TargetID: keep.ID, Speed: 15})

	f.ecs.ReapEnemies()
	NewProjectileSystem(f.ecs).Update()

	if len(f.ecs.Projectiles) != 1 || f.ecs.Projectiles[0].TargetID != keep.ID {
		t.Errorf("unexpected projectiles: %+v", f.ecs.Projectiles)
	}
}
