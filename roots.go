package bezier

import (
	"math"

	"github.com/samber/lo"
)

// DefaultLinearTolerance is the default tolerance of [IsLinear], in the
// units of the control values. It is tuned for curves drawn in pixel space
// and does not scale with the curve.
const DefaultLinearTolerance = 2

const (
	// Number of Newton-Raphson steps FindRoot takes before giving up.
	maxRootSteps = 12
	rootEpsilon  = 1e-6
	// FindAllRoots seeds a search at every multiple of 1/rootSeeds.
	rootSeeds = 100
)

// RootOptions specifies optional settings for [FindAllRootsOpt].
type RootOptions struct {
	// The tolerance used to decide whether control values progress
	// linearly. A value of 0 selects DefaultLinearTolerance.
	LinearTolerance float64
}

// IsLinear reports whether consecutive control values progress in nearly
// equal steps, that is, whether every difference between consecutive values is
// within DefaultLinearTolerance of the first difference.
func IsLinear(values []float64) bool {
	return isLinear(values, DefaultLinearTolerance)
}

func isLinear(values []float64, tolerance float64) bool {
	if len(values) < 2 {
		return true
	}
	d0 := values[1] - values[0]
	for i := 2; i < len(values); i++ {
		if math.Abs(values[i]-values[i-1]-d0) > tolerance {
			return false
		}
	}
	return true
}

// FindAllRoots finds the parameters in [0, 1] at which the d-th derivative
// of the curve with the given control values is zero.
//
// See [FindAllRootsOpt] for details.
func FindAllRoots(d int, values []float64) []float64 {
	return FindAllRootsOpt(d, values, RootOptions{})
}

// FindAllRootsOpt finds the parameters in [0, 1] at which the d-th
// derivative of the curve with the given control values is zero.
//
// Control values that progress linearly (see [IsLinear]) and quadratic curves
// searched for d = 1 have a linear d-th derivative, which has at most one
// root. It is found by interpolating between the derivative's values at 0
// and 1. For d = 0 those are the first and last control values themselves,
// not the first derivative's. Linear control values have no roots for d > 1.
//
// In all other cases, Newton-Raphson iteration (see [FindRoot]) is seeded at
// every multiple of 0.01 in [0, 1]. Roots are rounded to the nearest multiple
// of 1e-6 and reported once, in the order in which they were first found.
func FindAllRootsOpt(d int, values []float64, opts RootOptions) []float64 {
	tolerance := opts.LinearTolerance
	if tolerance == 0 {
		tolerance = DefaultLinearTolerance
	}
	linear := isLinear(values, tolerance)
	if linear || (d == 1 && len(values) == 3) {
		if linear && d > 1 {
			return nil
		}
		a := Derivative(d, 0, values)
		b := Derivative(d, 1, values)
		if a == b || a*b > 0 {
			return nil
		}
		return []float64{a / (a - b)}
	}

	var roots []float64
	for i := range rootSeeds + 1 {
		t := float64(i) / rootSeeds
		r := FindRoot(d, t, values, 0)
		if r == -1 {
			continue
		}
		r = math.Round(r/rootEpsilon) * rootEpsilon
		if r < 0 || r > 1 {
			continue
		}
		roots = append(roots, r)
	}
	return lo.Uniq(roots)
}

// FindRoot uses Newton-Raphson iteration, starting at seed, to find a
// parameter t at which the d-th derivative of the curve with the given
// control values equals offset.
//
// Where the (d+1)-th derivative vanishes the step assumes a slope of 1. The
// search stops once a step moves t by less than 1e-6 and returns the new t.
// It returns -1 if that doesn't happen within 12 steps.
func FindRoot(d int, seed float64, values []float64, offset float64) float64 {
	t := seed
	for range maxRootSteps {
		ft := Derivative(d, t, values) - offset
		df := Derivative(d+1, t, values)
		var next float64
		if df == 0 {
			next = t - ft
		} else {
			next = t - ft/df
		}
		if math.Abs(t-next) < rootEpsilon {
			return next
		}
		t = next
	}
	return -1
}
