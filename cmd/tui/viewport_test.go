package main

import (
	"testing"

	"go-bastion-defense/internal/defs"
	"go-bastion-defense/pkg/geom"
)

func TestViewportRoundTrip(t *testing.T) {
	v := newViewport(116, 41) // 80x40 map cells
	if v.cols != 80 || v.rows != 40 {
		t.Fatalf("viewport = %dx%d, want 80x40", v.cols, v.rows)
	}
	tests := []struct {
		col, row int
	}{
		{0, 0}, {10, 5}, {79, 39},
	}
	for _, tt := range tests {
		p := v.toCanvas(tt.col, tt.row)
		col, row := v.toCell(p)
		if col != tt.col || row != tt.row {
			t.Errorf("round trip (%d,%d) -> %+v -> (%d,%d)", tt.col, tt.row, p, col, row)
		}
	}
	if col, row := v.toCell(geom.Position{X: 400, Y: 300}); col != 40 || row != 20 {
		t.Errorf("center cell = (%d,%d), want (40,20)", col, row)
	}
}

func TestViewportClamp(t *testing.T) {
	v := newViewport(20, 5) // narrower than the sidebar
	if v.cols != 1 || v.rows != 4 {
		t.Fatalf("viewport = %dx%d", v.cols, v.rows)
	}
	if col, row := v.clamp(-3, 10); col != 0 || row != 3 {
		t.Errorf("clamp = (%d,%d)", col, row)
	}
	if v.contains(1, 0) || !v.contains(0, 0) {
		t.Error("contains disagrees with size")
	}
}

func TestGlyphs(t *testing.T) {
	for _, typ := range defs.TowerTypes {
		if towerGlyph(typ) == '#' {
			t.Errorf("tower %s has no glyph", typ)
		}
	}
	for kind := range defs.EnemyLibrary {
		if enemyGlyph(kind) == '?' {
			t.Errorf("enemy %s has no glyph", kind)
		}
	}
	if _, hidden := fogShade(1); !hidden {
		t.Error("full fog should hide the cell")
	}
	if r, hidden := fogShade(0); r != 0 || hidden {
		t.Error("clear cells draw nothing")
	}
}
