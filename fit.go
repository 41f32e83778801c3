package bezier

import (
	"fmt"
	"math"
)

// DefaultFitT is the parameter at which [GenerateCurve] places the middle
// point.
const DefaultFitT = 0.5

// ABC is the projection triple of a quadratic or cubic curve at some
// parameter t.
//
// B is the point on the curve at t. C is the point on the chord between the
// curve's end points that B projects onto, and A is the point on the line
// through C and B, beyond B, that B divides in the curve's projection ratio
// (see [ProjectionRatio]). For quadratic curves A is the middle control point;
// for cubic curves it is the point between the two middle control points on
// the first level of De Casteljau's algorithm.
//
// Given the end points and t, A and C only depend on B, which is what makes
// fitting a curve through three points possible.
type ABC struct {
	A Point
	B Point
	C Point
}

// ProjectionRatio returns the ratio of the distance between A and B to the
// distance between B and C, for the [ABC] projection triple of a curve of the
// given order at t. The ratio only exists for quadratic and cubic curves; for
// other orders, ErrNoRatioExists is returned.
//
// For cubic curves this is |top/(top-1)| with top = t³ + (1-t)³, the
// reciprocal of the expression usually quoted for the cubic ratio, which
// measures B-C against A-B. At t = 0.5 it is 1/3 rather than 3.
//
// The ratio is infinite at t = 0 and t = 1.
func ProjectionRatio(t float64, order int) (float64, error) {
	switch order {
	case 2:
		n := 2 * t * t
		m := 2 * t
		return math.Abs((n - m + 1) / (n - m)), nil
	case 3:
		top := t*t*t + (1-t)*(1-t)*(1-t)
		return math.Abs(top / (top - 1)), nil
	default:
		return 0, fmt.Errorf("order %d: %w", order, ErrNoRatioExists)
	}
}

// chordParam returns the parameter u such that the point C of the projection
// triple at t is start + (1-u)*(end-start).
func chordParam(t float64, order int) float64 {
	n := float64(order)
	top := math.Pow(1-t, n)
	return top / (math.Pow(t, n) + top)
}

// ProjectionTriple returns the [ABC] projection triple at t of any curve of
// the given order that starts at start, ends at end and passes through mid at
// t.
func ProjectionTriple(order int, start, mid, end Point, t float64) (ABC, error) {
	ratio, err := ProjectionRatio(t, order)
	if err != nil {
		return ABC{}, err
	}
	u := chordParam(t, order)
	c := end.Lerp(start, u)
	return ABC{
		A: mid.Translate(mid.Sub(c).Mul(ratio)),
		B: mid,
		C: c,
	}, nil
}

// GenerateOptions specifies optional settings for [GenerateCurveOpt].
type GenerateOptions struct {
	// The parameter at which the curve passes through the middle point. It
	// must be strictly between 0 and 1. A value of 0 selects DefaultFitT.
	T float64
	// The vectors from the middle point to the two points on the second level
	// of De Casteljau's algorithm, which determine the curve's tangent at the
	// middle point. Only used for cubic curves. If nil, the tangent is
	// parallel to the line from the end point to the start point, with the
	// two vectors scaled so that their lengths sum to the distance between
	// the end points and split in the ratio t : 1-t.
	Tangents *[2]Vec2
}

// GenerateCurve returns the quadratic (order 2) or cubic (order 3) curve
// that starts at p1, ends at p3 and passes through p2 at t = DefaultFitT.
//
// See [GenerateCurveOpt] for details.
func GenerateCurve(order int, p1, p2, p3 Point) (*Bezier, error) {
	return GenerateCurveOpt(order, p1, p2, p3, GenerateOptions{})
}

// GenerateCurveOpt returns the quadratic (order 2) or cubic (order 3) curve
// that starts at p1, ends at p3 and passes through p2 at t = opts.T.
//
// A quadratic curve is fully determined by the three points. A cubic curve has
// two degrees of freedom left, which are fixed by the tangent at p2; see
// [GenerateOptions].
//
// For other orders the error wraps ErrNoRatioExists. If opts.T isn't strictly
// between 0 and 1, the error wraps ErrParameterRange.
func GenerateCurveOpt(order int, p1, p2, p3 Point, opts GenerateOptions) (*Bezier, error) {
	t := opts.T
	if t == 0 {
		t = DefaultFitT
	}
	if !(t > 0 && t < 1) {
		return nil, fmt.Errorf("fitting curve at t = %g: %w", t, ErrParameterRange)
	}
	ratio, err := ProjectionRatio(t, order)
	if err != nil {
		return nil, err
	}
	var tangents [2]Vec2
	if opts.Tangents != nil {
		tangents = *opts.Tangents
	} else {
		d := p1.Sub(p3)
		tangents = [2]Vec2{d.Mul(t), d.Mul(1 - t).Negate()}
	}

	var curve *Bezier
	if order == 2 {
		curve = NewBezier(p1, p2, p3)
	} else {
		curve = NewBezier(p1, p2, p2, p3)
	}
	span := curve.Span(t)
	abc, err := ProjectionTriple(order, curve.Start(), p2, curve.End(), t)
	if err != nil {
		return nil, err
	}
	helper := p2.Translate(abc.C.Sub(p2).Mul(-ratio))

	if order == 2 {
		curve.points[1] = helper
	} else {
		curve.points[1], curve.points[2] = ReverseDeCasteljau(helper, p2, t, span, tangents)
	}
	curve.Refresh()
	return curve, nil
}

// ReverseDeCasteljau reconstructs the two middle control points of a cubic
// curve from the point helper on the first level of De Casteljau's algorithm
// at t, the point mid on the curve at t, the tangent vectors from mid to the
// two points on the second level, and span, whose first and fourth points are
// the curve's end points (as returned by [Bezier.Span]).
//
// t must be strictly between 0 and 1.
func ReverseDeCasteljau(helper, mid Point, t float64, span []Point, tangents [2]Vec2) (Point, Point) {
	mt := 1 - t
	e1 := mid.Translate(tangents[0])
	e2 := mid.Translate(tangents[1])
	v1 := e1.Translate(e1.Sub(helper).Mul(t).Div(mt))
	v2 := e2.Translate(e2.Sub(helper).Mul(mt).Div(t))
	c1 := v1.Translate(v1.Sub(span[0]).Mul(mt).Div(t))
	c2 := v2.Translate(v2.Sub(span[3]).Mul(t).Div(mt))
	return c1, c2
}
