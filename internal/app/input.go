// internal/app/input.go
package app

import (
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/types"
	"go-bastion-defense/pkg/geom"
)

// SelectionKind says what, if anything, the player has selected.
type SelectionKind int

const (
	SelectedNone SelectionKind = iota
	SelectedEnemy
	SelectedTower
)

// Selection is the inspected entity.
type Selection struct {
	Kind SelectionKind
	ID   types.EntityID
}

// SelectTowerType chooses what the next placement builds.
func (g *Game) SelectTowerType(t defs.TowerType) bool {
	if _, ok := defs.Tower(t); !ok {
		return false
	}
	g.selectedType = t
	return true
}

// SelectedTowerType returns the type the next placement builds.
func (g *Game) SelectedTowerType() defs.TowerType {
	return g.selectedType
}

// Selection returns the current selection, cleared if its entity is gone.
func (g *Game) Selection() Selection {
	switch g.selection.Kind {
	case SelectedEnemy:
		if e, ok := g.ECS.Enemy(g.selection.ID); !ok || e.IsDead {
			g.selection = Selection{}
		}
	case SelectedTower:
		if _, ok := g.ECS.Tower(g.selection.ID); !ok {
			g.selection = Selection{}
		}
	}
	return g.selection
}

// ClearSelection deselects everything.
func (g *Game) ClearSelection() {
	g.selection = Selection{}
}

// HandleClick resolves a click on the battlefield: an enemy under the cursor
// is selected first, then a tower; otherwise the selected tower type is
// placed and the new tower selected.
func (g *Game) HandleClick(x, y float64) Selection {
	pos := geom.Position{X: x, Y: y}
	for _, e := range g.ECS.Enemies {
		if !e.IsDead && geom.Distance(e.Position, pos) < config.SelectRadius {
			g.selection = Selection{Kind: SelectedEnemy, ID: e.ID}
			return g.selection
		}
	}
	for _, t := range g.ECS.Towers {
		if geom.Distance(t.Position, pos) < config.SelectRadius {
			g.selection = Selection{Kind: SelectedTower, ID: t.ID}
			return g.selection
		}
	}
	if id, ok := g.PlaceTower(x, y); ok {
		g.selection = Selection{Kind: SelectedTower, ID: id}
	}
	return g.selection
}
