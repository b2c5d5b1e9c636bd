// pkg/geom/geom.go
package geom

import "math"

// Position — точка в координатах холста.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Position) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Position) Position {
	return Position{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// StepToward moves from by at most step along the straight line to target.
// It reports whether target is closer than step, in which case from is
// returned unchanged and the caller decides how to snap.
func StepToward(from, target Position, step float64) (Position, bool) {
	dx := target.X - from.X
	dy := target.Y - from.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < step {
		return from, true
	}
	return Position{
		X: from.X + (dx/dist)*step,
		Y: from.Y + (dy/dist)*step,
	}, false
}

// DistanceToSegment returns the shortest distance from p to the segment ab.
func DistanceToSegment(p, a, b Position) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return Distance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return Distance(p, Position{X: a.X + t*dx, Y: a.Y + t*dy})
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
