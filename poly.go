package bezier

import "math"

// Polyterm returns the Bernstein polynomial term (1−t)^(n−k) · t^k, without
// its binomial coefficient.
func Polyterm(n, k int, t float64) float64 {
	return math.Pow(1-t, float64(n-k)) * math.Pow(t, float64(k))
}

// Evaluate evaluates the one-dimensional Bézier curve with the given control
// values at parameter t. The order of the curve is len(values)-1.
//
// At t = 0 and t = 1 the result is exactly the first and last value,
// respectively.
func Evaluate(t float64, values []float64) float64 {
	order := len(values) - 1
	var sum float64
	for k, v := range values {
		if v == 0 {
			continue
		}
		sum += Binomial(order, k) * Polyterm(order, k, t) * v
	}
	return sum
}

// Hodograph returns the control values of the derivative of the curve with
// the given control values. The result has one value fewer. It returns nil
// for curves of order 0.
func Hodograph(values []float64) []float64 {
	order := len(values) - 1
	if order <= 0 {
		return nil
	}
	out := make([]float64, order)
	for k := range out {
		out[k] = float64(order) * (values[k+1] - values[k])
	}
	return out
}

// Derivative evaluates the d-th derivative of the one-dimensional Bézier
// curve with the given control values at parameter t.
//
// The derivative of a Bézier curve of order n is a Bézier curve of order n-1,
// its hodograph. Each reduction drops one control value; once a single value
// remains the curve is constant and every further derivative is 0. For d = 0
// this is the same as [Evaluate].
func Derivative(d int, t float64, values []float64) float64 {
	for ; d > 0; d-- {
		if len(values) <= 1 {
			return 0
		}
		values = Hodograph(values)
	}
	return Evaluate(t, values)
}
