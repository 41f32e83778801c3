// Package bezier provides the numerical routines behind an interactive
// Bézier curve tool: evaluating and differentiating Bézier curves of any
// order, measuring their arc length, finding roots of their derivatives,
// fitting quadratic and cubic curves through three points, and the 2D vector
// algebra these need.
//
// # Control values and points
//
// Most routines work on one axis at a time. A curve of order n is described
// per axis by n+1 control values, a []float64, and evaluated with the
// Bernstein form (see [Evaluate]). Derivatives are computed by repeatedly
// taking the hodograph of the control values (see [Derivative]). [Bezier]
// combines two such axes into a curve over [Point] control points, and is the
// type used for curve fitting and for splitting curves.
//
// # Arc length
//
// [Arclen] and [ArclenOpt] integrate the speed of a curve with Legendre-Gauss
// quadrature. Rules with 2 to 26 points are available (see [LegendreGauss]);
// a curve with more control points than the largest rule has points cannot be
// measured and yields -1.
//
// # Roots
//
// [FindRoot] runs Newton-Raphson iteration from a single seed and returns -1
// if it doesn't converge. [FindAllRoots] seeds it across the whole curve, and
// special-cases derivatives that are linear.
//
// # Curve fitting
//
// [GenerateCurve] constructs the quadratic or cubic curve passing through
// three points, using the [ABC] projection triple. See the section "Creating a
// curve from three points" of [A Primer on Bézier Curves] for the underlying
// geometry.
//
// # Offset curves
//
// [Graduate] spreads a thickness profile over the pieces of a poly-curve in
// proportion to their lengths.
//
// # Concurrency
//
// All functions are safe for concurrent use. The binomial coefficients used
// for evaluation are cached in a table that grows on demand, under a lock.
// [Bezier] values must not be modified concurrently.
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package bezier
