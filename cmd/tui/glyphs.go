// cmd/tui/glyphs.go
package main

import (
	"image/color"

	"go-bastion-defense/internal/defs"

	"github.com/gdamore/tcell/v2"
)

var enemyGlyphs = map[defs.EnemyKind]rune{
	defs.EnemyScout:       's',
	defs.EnemyTank:        'T',
	defs.EnemyBoss:        '@',
	defs.EnemyRecon:       'r',
	defs.EnemyLegionary:   'L',
	defs.EnemyHorseArcher: 'h',
}

var towerGlyphs = map[defs.TowerType]rune{
	defs.TowerBasic:  'A',
	defs.TowerSniper: 'M',
	defs.TowerPulse:  'P',
	defs.TowerFrost:  'I',
	defs.TowerStun:   'R',
}

func enemyGlyph(kind defs.EnemyKind) rune {
	if r, ok := enemyGlyphs[kind]; ok {
		return r
	}
	return '?'
}

func towerGlyph(t defs.TowerType) rune {
	if r, ok := towerGlyphs[t]; ok {
		return r
	}
	return '#'
}

// rgb converts a palette color to a terminal color.
func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// fogShade returns the glyph drawn over a cell with the given fog density,
// and whether the cell hides what lies beneath.
func fogShade(density float64) (rune, bool) {
	switch {
	case density > 0.85:
		return ' ', true
	case density > 0.6:
		return '░', true
	case density > 0.35:
		return '·', false
	default:
		return 0, false
	}
}
