package bezier

import "math"

// DefaultQuadratureOrder is the number of Legendre-Gauss points used by
// [Arclen]. It is accurate enough for curves of up to cubic order as they are
// commonly drawn in 2D graphics.
const DefaultQuadratureOrder = 20

// ArclenOptions specifies optional settings for [ArclenOpt].
type ArclenOptions struct {
	// The parameter up to which the length is measured, starting at 0. A
	// value of 0 measures the whole curve.
	T float64
	// The number of quadrature points, between MinQuadratureOrder and
	// MaxQuadratureOrder. A value of 0 selects DefaultQuadratureOrder.
	Order int
}

// Speed returns the magnitude of the velocity of the curve with control
// values xs and ys at parameter t.
func Speed(t float64, xs, ys []float64) float64 {
	return math.Hypot(Derivative(1, t, xs), Derivative(1, t, ys))
}

// Arclen returns the length of the curve with control values xs and ys,
// using DefaultQuadratureOrder-point Legendre-Gauss quadrature.
//
// It returns -1 if the length cannot be computed; see [ArclenOpt].
func Arclen(xs, ys []float64) float64 {
	return ArclenOpt(xs, ys, ArclenOptions{})
}

// ArclenOpt returns the length of the curve with control values xs and ys
// between parameters 0 and opts.T, using opts.Order-point Legendre-Gauss
// quadrature rescaled from [-1, 1] to [0, opts.T].
//
// The result is -1 when it cannot be computed: the curve has more control
// points than the largest available quadrature rule, or opts.Order is outside
// the range of available rules.
func ArclenOpt(xs, ys []float64, opts ArclenOptions) float64 {
	t := opts.T
	if t == 0 {
		t = 1
	}
	n := opts.Order
	if n == 0 {
		n = DefaultQuadratureOrder
	}
	if len(xs) > MaxQuadratureOrder || n < MinQuadratureOrder || n > MaxQuadratureOrder {
		return -1
	}
	z := t / 2
	var sum float64
	for i, x := range legendreGaussAbscissae[n] {
		sum += legendreGaussWeights[n][i] * Speed(z*x+z, xs, ys)
	}
	return z * sum
}
