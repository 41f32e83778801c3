package bezier

// Line represents a line segment between two points. Where noted, methods
// treat it as the infinite line through both points.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It returns false if the lines are parallel or coincident.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Side returns +1 or -1 depending on which side of the directed line the
// point lies. See [Side].
func (l Line) Side(pt Point) int {
	return Side(l.P0, l.P1, pt)
}

// LineIntersection returns the intersection of the infinite line through p1
// and p2 with the infinite line through p3 and p4. It returns false when the
// lines are exactly parallel, including when they coincide.
func LineIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	return Line{p1, p2}.CrossingPoint(Line{p3, p4})
}

// NormalizedDot returns the dot product of the unit vectors pointing from p1
// to p2 and from p3 to p4, that is, the cosine of the angle between the two
// directions. If either vector has zero length, the result is 0.
func NormalizedDot(p1, p2, p3, p4 Point) float64 {
	a, ok := p2.Sub(p1).unit()
	if !ok {
		return 0
	}
	b, ok := p4.Sub(p3).unit()
	if !ok {
		return 0
	}
	return a.Dot(b)
}

// Side reports on which side of the directed line from s to e the point p
// lies. The direction s→e is rotated by 90° (see [Vec2.Perp]); if p lies in
// the half plane that rotated direction points into, or on the line itself,
// the result is +1, otherwise it is -1.
//
// Degenerate inputs, where s coincides with e or with p, return +1.
func Side(s, e, p Point) int {
	dir, ok := e.Sub(s).unit()
	if !ok {
		return 1
	}
	sp, ok := p.Sub(s).unit()
	if !ok {
		return 1
	}
	if dir.Perp().Dot(sp) < 0 {
		return -1
	}
	return 1
}
