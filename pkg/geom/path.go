package geom

// Path is an ordered polyline that units walk from the first point to the last.
type Path []Position

// Len returns the number of waypoints.
func (p Path) Len() int {
	return len(p)
}

// Start returns the first waypoint.
func (p Path) Start() Position {
	return p[0]
}

// End returns the last waypoint.
func (p Path) End() Position {
	return p[len(p)-1]
}

// Waypoint returns the point at index i and false when i is past the end.
func (p Path) Waypoint(i int) (Position, bool) {
	if i < 0 || i >= len(p) {
		return Position{}, false
	}
	return p[i], true
}

// Progress converts a waypoint index into a percentage of the path walked.
func (p Path) Progress(index int) float64 {
	if len(p) < 2 {
		return 100
	}
	return float64(index) / float64(len(p)-1) * 100
}

// Midpoints returns the midpoint of every segment.
func (p Path) Midpoints() []Position {
	if len(p) < 2 {
		return nil
	}
	mids := make([]Position, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		mids = append(mids, Midpoint(p[i-1], p[i]))
	}
	return mids
}

// NearMidpoint reports whether pos lies strictly within radius of any
// segment midpoint. This is the placement exclusion used by the game; it is
// an approximation and misses points near the ends of long segments.
func (p Path) NearMidpoint(pos Position, radius float64) bool {
	for _, m := range p.Midpoints() {
		if Distance(m, pos) < radius {
			return true
		}
	}
	return false
}

// DistanceTo returns the exact distance from pos to the nearest segment.
func (p Path) DistanceTo(pos Position) float64 {
	if len(p) == 1 {
		return Distance(pos, p[0])
	}
	best := -1.0
	for i := 1; i < len(p); i++ {
		d := DistanceToSegment(pos, p[i-1], p[i])
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}
