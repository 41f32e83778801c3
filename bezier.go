package bezier

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

var _ Graduater = (*Bezier)(nil)

// Bezier is a Bézier curve of arbitrary order, defined by its control points.
//
// A Bezier caches state derived from its control points, such as its
// per-axis control values and its length. Use [Bezier.SetPoint] to modify
// control points, or call [Bezier.Refresh] after modifying them by other
// means.
type Bezier struct {
	points []Point
	xs, ys []float64
	length float64
	grad   Graduation
}

// NewBezier returns the curve with the given control points. The order of
// the curve is one less than the number of points. It panics if no points are
// provided.
func NewBezier(points ...Point) *Bezier {
	if len(points) == 0 {
		panic("Bézier curve needs at least one control point")
	}
	b := &Bezier{points: slices.Clone(points)}
	b.Refresh()
	return b
}

// Refresh recomputes state derived from the control points.
func (b *Bezier) Refresh() {
	b.xs, b.ys = splitAxes(b.points)
	b.length = Arclen(b.xs, b.ys)
}

// Order returns the order of the curve, 2 for quadratic and 3 for cubic
// curves.
func (b *Bezier) Order() int {
	return len(b.points) - 1
}

// ControlPoints returns a copy of the curve's control points.
func (b *Bezier) ControlPoints() []Point {
	return slices.Clone(b.points)
}

// SetPoint replaces the i-th control point and refreshes the curve.
func (b *Bezier) SetPoint(i int, p Point) {
	b.points[i] = p
	b.Refresh()
}

// Axes returns copies of the control values of the x and y axes.
func (b *Bezier) Axes() (xs, ys []float64) {
	return slices.Clone(b.xs), slices.Clone(b.ys)
}

func (b *Bezier) Start() Point { return b.points[0] }
func (b *Bezier) End() Point   { return b.points[len(b.points)-1] }

func (b *Bezier) Eval(t float64) Point {
	return Point{
		X: Evaluate(t, b.xs),
		Y: Evaluate(t, b.ys),
	}
}

// Deriv evaluates the d-th derivative of the curve at t.
func (b *Bezier) Deriv(d int, t float64) Vec2 {
	return Vec2{
		X: Derivative(d, t, b.xs),
		Y: Derivative(d, t, b.ys),
	}
}

// Normal returns the unit normal of the curve at t, which is the unit
// tangent rotated by 90° (see [Vec2.Perp]). Where the curve has no tangent,
// the result is the zero vector.
func (b *Bezier) Normal(t float64) Vec2 {
	n, _ := b.Deriv(1, t).Perp().unit()
	return n
}

// Length returns the length of the curve, or -1 if it cannot be computed.
// The value is cached by [Bezier.Refresh].
func (b *Bezier) Length() float64 {
	return b.length
}

// ArclenTo returns the length of the curve between parameters 0 and t.
func (b *Bezier) ArclenTo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return ArclenOpt(b.xs, b.ys, ArclenOptions{T: t})
}

// Span returns the points computed by De Casteljau's algorithm at t. The
// result starts with the control points, followed by each successive level of
// interpolated points, and ends with the point on the curve. It holds
// Markers(len(points)) points.
func (b *Bezier) Span(t float64) []Point {
	out := make([]Point, 0, Markers(len(b.points)))
	out = append(out, b.points...)
	level := out
	for len(level) > 1 {
		start := len(out)
		for i := range len(level) - 1 {
			out = append(out, level[i].Lerp(level[i+1], t))
		}
		level = out[start:]
	}
	return out
}

// Split splits the curve at t into two curves of the same order.
func (b *Bezier) Split(t float64) (*Bezier, *Bezier) {
	span := b.Span(t)
	n := len(b.points)
	left := make([]Point, 0, n)
	right := make([]Point, n)
	idx := 0
	for size := n; size > 0; size-- {
		left = append(left, span[idx])
		right[size-1] = span[idx+size-1]
		idx += size
	}
	return NewBezier(left...), NewBezier(right...)
}

// ABC returns the projection triple of the curve at t. See
// [ProjectionTriple].
func (b *Bezier) ABC(t float64) (ABC, error) {
	return ProjectionTriple(b.Order(), b.Start(), b.Eval(t), b.End(), t)
}

// Extrema returns, in increasing order, the parameters in [0, 1] at which
// the curve's x or y coordinate has a local extremum.
func (b *Bezier) Extrema() []float64 {
	out := append(FindAllRoots(1, b.xs), FindAllRoots(1, b.ys)...)
	slices.Sort(out)
	return slices.Compact(out)
}

// Bounds returns the corners of the smallest axis-aligned rectangle that
// contains the curve.
func (b *Bezier) Bounds() (lo, hi Point) {
	lo = Pt(math.Inf(1), math.Inf(1))
	hi = Pt(math.Inf(-1), math.Inf(-1))
	for _, t := range append([]float64{0, 1}, b.Extrema()...) {
		p := b.Eval(t)
		lo = Pt(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = Pt(max(hi.X, p.X), max(hi.Y, p.Y))
	}
	return lo, hi
}

// Graduate sets the curve's offset profile: the offset grows linearly from
// thickness*start at t = 0 to thickness*end at t = 1.
func (b *Bezier) Graduate(thickness, start, end float64) {
	b.grad = Graduation{Thickness: thickness, Start: start, End: end}
}

// Graduation returns the curve's offset profile.
func (b *Bezier) Graduation() Graduation {
	return b.grad
}

// Offset returns the offset distance at t, as set by [Bezier.Graduate].
func (b *Bezier) Offset(t float64) float64 {
	g := b.grad
	return g.Thickness * (g.Start + (g.End-g.Start)*t)
}

// OffsetPoint returns the point at distance Offset(t) from the curve along
// its normal at t.
func (b *Bezier) OffsetPoint(t float64) Point {
	return b.Eval(t).Translate(b.Normal(t).Mul(b.Offset(t)))
}

func (b *Bezier) String() string {
	var sb strings.Builder
	sb.WriteString("Bezier{")
	for i, p := range b.points {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// Graduation describes how a curve's offset distance changes along the
// curve.
type Graduation struct {
	Thickness float64
	Start     float64
	End       float64
}

func (g Graduation) String() string {
	return fmt.Sprintf("%g×[%g, %g]", g.Thickness, g.Start, g.End)
}
