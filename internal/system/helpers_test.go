package system

import (
	"time"

	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/entity"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/pkg/geom"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// testLevel is an L-shaped route: right 100, then down 100.
var testLevel = defs.LevelDefinition{
	ID:            "test",
	Name:          "Test Pass",
	WavesToUnlock: 2,
	Path:          geom.Path{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}},
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	events     *recorder
	economy    *EconomySystem
}

func newFixture(gold, lives int) *fixture {
	ecs := entity.NewECS(gold, lives, 0)
	ecs.GameState.Paused = false
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec, event.AllTypes...)
	return &fixture{
		ecs:        ecs,
		dispatcher: d,
		events:     rec,
		economy:    NewEconomySystem(ecs, d, len(defs.DefaultLevels)),
	}
}

func (f *fixture) addEnemy(kind defs.EnemyKind, hp float64, pos geom.Position) *component.Enemy {
	e := &component.Enemy{
		ID: f.ecs.NewEntity(), Kind: kind, HP: hp, MaxHP: hp,
		Speed: defs.Enemy(kind).Speed, Position: pos, PathType: defs.PathPrimary,
	}
	f.ecs.AddEnemy(e)
	return e
}

func (f *fixture) addTower(tt defs.TowerType, pos geom.Position, mode defs.TargetingMode) *component.Tower {
	def, _ := defs.Tower(tt)
	t := &component.Tower{
		ID: f.ecs.NewEntity(), Type: tt, Position: pos, Range: def.Range, Damage: def.Damage,
		Cooldown: def.Cooldown, Level: 1, Cost: def.Cost, TotalInvested: def.Cost, TargetingMode: mode,
	}
	f.ecs.AddTower(t)
	return t
}
