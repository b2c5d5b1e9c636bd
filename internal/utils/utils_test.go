package utils

import (
	"image/color"
	"testing"
	"time"
)

func TestManualClockAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)
	c.Advance(850 * time.Millisecond)
	if got := c.Now().Sub(start); got != 850*time.Millisecond {
		t.Errorf("elapsed = %v, want 850ms", got)
	}
	c.Set(start)
	if !c.Now().Equal(start) {
		t.Error("Set did not move the clock")
	}
}

func TestPRNGIsReproducible(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		if x, y := a.Choose(items), b.Choose(items); x != y {
			t.Fatalf("draw %d differs: %q vs %q", i, x, y)
		}
	}
	if a.Choose(nil) != "" {
		t.Error("Choose on empty slice should return empty string")
	}
}

func TestLerpColor(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	green := color.RGBA{0, 255, 0, 255}
	if got := LerpColor(red, green, 0); got != red {
		t.Errorf("t=0 gave %v", got)
	}
	if got := LerpColor(red, green, 2); got != green {
		t.Errorf("t clamped to 1 gave %v", got)
	}
	mid := LerpColor(red, green, 0.5)
	if mid.R != 128 || mid.G != 128 {
		t.Errorf("midpoint = %v", mid)
	}
}

func TestToRoman(t *testing.T) {
	tests := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for in, want := range tests {
		if got := ToRoman(in); got != want {
			t.Errorf("ToRoman(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "hold the pass", 20, []string{"hold the pass"}},
		{"breaks on spaces", "hold the pass at Krujë", 10, []string{"hold the", "pass at", "Krujë"}},
		{"long word", "abcdefghij k", 4, []string{"abcd", "efgh", "ij k"}},
		{"empty", "   ", 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.in, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("WrapText = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
