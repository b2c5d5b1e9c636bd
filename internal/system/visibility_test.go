package system

import (
	"testing"

	"go-bastion-defense/internal/defs"
	"go-bastion-defense/pkg/geom"
)

type reveal struct{ x, y, r float64 }

type recordingRevealer struct {
	calls []reveal
}

func (r *recordingRevealer) RevealArea(x, y, radius float64) {
	r.calls = append(r.calls, reveal{x, y, radius})
}

func TestVisibilityRevealsAroundTowers(t *testing.T) {
	f := newFixture(0, 100)
	f.addTower(defs.TowerBasic, geom.Position{X: 10, Y: 20}, defs.TargetFirst)
	f.addTower(defs.TowerSniper, geom.Position{X: 30, Y: 40}, defs.TargetFirst)
	rec := &recordingRevealer{}
	NewVisibilitySystem(f.ecs, rec).Update()

	want := []reveal{{10, 20, 170 + 90}, {30, 40, 360 + 90}}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %v", rec.calls)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, rec.calls[i], want[i])
		}
	}
}

func TestVisibilityNilRevealer(t *testing.T) {
	f := newFixture(0, 100)
	f.addTower(defs.TowerBasic, geom.Position{}, defs.TargetFirst)
	NewVisibilitySystem(f.ecs, nil).Update()
}
