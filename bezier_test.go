package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

var testCurves = []*Bezier{
	NewBezier(Pt(3, 4)),
	NewBezier(Pt(0, 0), Pt(10, 5)),
	NewBezier(Pt(0, 0), Pt(30, 80), Pt(100, 10)),
	NewBezier(Pt(0, 0), Pt(-20, 60), Pt(90, 70), Pt(100, 0)),
	NewBezier(Pt(0, 0), Pt(10, 40), Pt(50, -30), Pt(80, 60), Pt(120, 0)),
}

func TestBezierSpan(t *testing.T) {
	for _, c := range testCurves {
		for _, ts := range []float64{0, 0.3, 1} {
			span := c.Span(ts)
			n := len(c.ControlPoints())
			if len(span) != Markers(n) {
				t.Fatalf("%v: got span of %d points, want %d", c, len(span), Markers(n))
			}
			diff(t, c.ControlPoints(), span[:n])
			diff(t, c.Eval(ts), span[len(span)-1], cmpopts.EquateApprox(0, 1e-9))
		}
	}
}

func TestBezierSplit(t *testing.T) {
	for _, c := range testCurves[1:] {
		const at = 0.3
		left, right := c.Split(at)
		assert.Equal(t, c.Order(), left.Order())
		assert.Equal(t, c.Order(), right.Order())
		for i := range 11 {
			u := float64(i) / 10
			diff(t, c.Eval(at*u), left.Eval(u), cmpopts.EquateApprox(0, 1e-9))
			diff(t, c.Eval(at+(1-at)*u), right.Eval(u), cmpopts.EquateApprox(0, 1e-9))
		}
		assert.InDelta(t, c.Length(), left.Length()+right.Length(), 1e-4)
	}
}

func TestBezierLength(t *testing.T) {
	c := NewBezier(Pt(0, 0), Pt(3, 4))
	assert.InDelta(t, 5, c.Length(), 1e-12)
	assert.InDelta(t, 2.5, c.ArclenTo(0.5), 1e-12)
	assert.Zero(t, c.ArclenTo(0))

	c.SetPoint(1, Pt(6, 8))
	assert.InDelta(t, 10, c.Length(), 1e-12)

	pts := make([]Point, MaxQuadratureOrder+1)
	for i := range pts {
		pts[i] = Pt(float64(i), 0)
	}
	assert.Equal(t, -1.0, NewBezier(pts...).Length())
}

func TestBezierControlPoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 2), Pt(3, 0)}
	c := NewBezier(pts...)
	pts[1] = Pt(100, 100)
	diff(t, Pt(1, 2), c.ControlPoints()[1])

	cp := c.ControlPoints()
	cp[0] = Pt(-1, -1)
	diff(t, Pt(0, 0), c.Start())

	xs, ys := c.Axes()
	diff(t, []float64{0, 1, 3}, xs)
	diff(t, []float64{0, 2, 0}, ys)
	xs[0] = 7
	diff(t, Pt(0, 0), c.Eval(0))

	assert.Panics(t, func() { NewBezier() })
}

func TestBezierExtrema(t *testing.T) {
	c := NewBezier(Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0))
	diff(t, []float64{0, 0.5, 1}, c.Extrema(), cmpopts.EquateApprox(0, 1e-6))

	lo, hi := c.Bounds()
	diff(t, Pt(0, 0), lo, cmpopts.EquateApprox(0, 1e-9))
	diff(t, Pt(100, 75), hi, cmpopts.EquateApprox(0, 1e-9))

	q := NewBezier(Pt(0, 0), Pt(50, -40), Pt(100, 0))
	lo, hi = q.Bounds()
	diff(t, Pt(0, -20), lo, cmpopts.EquateApprox(0, 1e-9))
	diff(t, Pt(100, 0), hi, cmpopts.EquateApprox(0, 1e-9))
}

func TestBezierNormal(t *testing.T) {
	c := NewBezier(Pt(0, 0), Pt(10, 0))
	diff(t, Vec(0, 1), c.Normal(0.5))
	diff(t, Vec(0, 0), NewBezier(Pt(1, 1), Pt(1, 1)).Normal(0.5))

	q := NewBezier(Pt(0, 0), Pt(30, 80), Pt(100, 10))
	for _, ts := range []float64{0.1, 0.5, 0.9} {
		n := q.Normal(ts)
		assert.InDelta(t, 1, n.Hypot(), 1e-12)
		assert.InDelta(t, 0, n.Dot(q.Deriv(1, ts)), 1e-9)
	}
}

func TestBezierOffset(t *testing.T) {
	c := NewBezier(Pt(0, 0), Pt(10, 0))
	assert.Zero(t, c.Offset(0.5))

	c.Graduate(2, 0, 1)
	assert.Equal(t, Graduation{Thickness: 2, Start: 0, End: 1}, c.Graduation())
	assert.InDelta(t, 0, c.Offset(0), 1e-15)
	assert.InDelta(t, 1, c.Offset(0.5), 1e-15)
	assert.InDelta(t, 2, c.Offset(1), 1e-15)
	diff(t, Pt(5, 1), c.OffsetPoint(0.5), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(10, 2), c.OffsetPoint(1), cmpopts.EquateApprox(0, 1e-12))
}

func TestBezierString(t *testing.T) {
	assert.Equal(t, "Bezier{(0, 0), (10, 2.5)}", NewBezier(Pt(0, 0), Pt(10, 2.5)).String())
	assert.Equal(t, "2×[0.25, 1]", Graduation{2, 0.25, 1}.String())
}

func TestBezierEvalMatchesAxes(t *testing.T) {
	for _, c := range testCurves {
		xs, ys := c.Axes()
		for i := range 11 {
			ts := float64(i) / 10
			p := c.Eval(ts)
			if p.X != Evaluate(ts, xs) || p.Y != Evaluate(ts, ys) {
				t.Errorf("%v at %g: got %v", c, ts, p)
			}
			d := c.Deriv(1, ts)
			if math.Hypot(d.X, d.Y) != Speed(ts, xs, ys) {
				t.Errorf("%v at %g: derivative %v disagrees with speed", c, ts, d)
			}
		}
	}
}
