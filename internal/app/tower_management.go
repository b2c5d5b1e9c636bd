// internal/app/tower_management.go
package app

import (
	"go-bastion-defense/internal/component"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/event"
	"go-bastion-defense/internal/logger"
	"go-bastion-defense/internal/types"
	"go-bastion-defense/pkg/geom"
)

// CanPlaceAt reports whether a tower may stand at (x, y): not within the
// exclusion radius of any path segment midpoint.
func (g *Game) CanPlaceAt(x, y float64) bool {
	pos := geom.Position{X: x, Y: y}
	if g.Level.Path.NearMidpoint(pos, defs.PlacementExclusion) {
		return false
	}
	return !g.Level.PathFor(defs.PathSecondary).NearMidpoint(pos, defs.PlacementExclusion)
}

// PlaceTower builds the selected tower type at (x, y).
func (g *Game) PlaceTower(x, y float64) (types.EntityID, bool) {
	if g.ECS.GameState.GameOver || !g.CanPlaceAt(x, y) {
		return 0, false
	}
	def, ok := defs.Tower(g.selectedType)
	if !ok || !g.EconomySystem.Spend(def.Cost) {
		return 0, false
	}

	t := &component.Tower{
		ID:            g.ECS.NewEntity(),
		Type:          def.Type,
		Position:      geom.Position{X: x, Y: y},
		Range:         def.Range,
		Damage:        def.Damage,
		Cooldown:      def.Cooldown,
		Level:         1,
		Cost:          def.Cost,
		TotalInvested: def.Cost,
		TargetingMode: defs.TargetFirst,
	}
	g.ECS.AddTower(t)
	g.VisibilitySystem.RevealTower(t)

	logger.Debug("Tower placed", "id", t.ID, "type", t.Type, "x", x, "y", y)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{
		ID: t.ID, Type: t.Type, Position: t.Position, Level: t.Level, Gold: def.Cost,
	}})
	return t.ID, true
}

// UpgradeCost returns the price of the next level of tower id. It reports
// false for unknown or fully upgraded towers.
func (g *Game) UpgradeCost(id types.EntityID) (int, bool) {
	t, ok := g.ECS.Tower(id)
	if !ok || t.Level >= defs.MaxTowerLevel {
		return 0, false
	}
	return defs.UpgradeCost(t.Cost, t.Level), true
}

// UpgradeTower raises tower id by one level if affordable.
func (g *Game) UpgradeTower(id types.EntityID) bool {
	cost, ok := g.UpgradeCost(id)
	if !ok || g.ECS.GameState.GameOver || !g.EconomySystem.Spend(cost) {
		return false
	}
	t, _ := g.ECS.Tower(id)
	t.Level++
	t.Damage = int(float64(t.Damage) * defs.UpgradeDamageFactor)
	t.Range += defs.UpgradeRangeBonus
	t.Cooldown = max(defs.MinCooldownMs, int(float64(t.Cooldown)*defs.UpgradeCooldownRate))
	t.TotalInvested += cost
	g.VisibilitySystem.RevealTower(t)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{
		ID: t.ID, Type: t.Type, Position: t.Position, Level: t.Level, Gold: cost,
	}})
	return true
}

// RemoveTower sells tower id for part of what was invested in it.
func (g *Game) RemoveTower(id types.EntityID) bool {
	t, ok := g.ECS.RemoveTower(id)
	if !ok {
		return false
	}
	refund := defs.Refund(t.TotalInvested)
	g.EconomySystem.Credit(refund)
	if g.selection.Kind == SelectedTower && g.selection.ID == id {
		g.selection = Selection{}
	}

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerRemoved, Data: event.TowerData{
		ID: t.ID, Type: t.Type, Position: t.Position, Level: t.Level, Gold: -refund,
	}})
	return true
}

// SetTargetingMode changes how tower id picks its target.
func (g *Game) SetTargetingMode(id types.EntityID, mode defs.TargetingMode) bool {
	t, ok := g.ECS.Tower(id)
	if !ok || !validMode(mode) {
		return false
	}
	t.TargetingMode = mode
	return true
}

func validMode(mode defs.TargetingMode) bool {
	for _, m := range defs.TargetingModes {
		if m == mode {
			return true
		}
	}
	return false
}
