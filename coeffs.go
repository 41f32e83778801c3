package bezier

import "sync"

// coefficients caches triangular numbers and rows of Pascal's triangle.
//
// Both tables only ever grow. Growth builds a new backing slice and swaps it
// in under the write lock, so rows handed out earlier stay valid.
type coefficients struct {
	mu       sync.RWMutex
	markers  []int
	binomial [][]float64
}

var coeffs = &coefficients{
	markers: []int{0, 1, 3, 6, 10, 15, 21},
	binomial: [][]float64{
		{1},
		{1, 1},
		{1, 2, 1},
		{1, 3, 3, 1},
	},
}

// Markers returns the triangular number T(n) = n(n+1)/2, which is the number
// of points in the De Casteljau span of a curve with n control points.
func Markers(n int) int {
	if n < 0 {
		return n * (n + 1) / 2
	}
	return coeffs.marker(n)
}

func (c *coefficients) marker(n int) int {
	c.mu.RLock()
	if n < len(c.markers) {
		v := c.markers[n]
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if n >= len(c.markers) {
		grown := make([]int, n+1, 2*(n+1))
		copy(grown, c.markers)
		for i := len(c.markers); i <= n; i++ {
			grown[i] = grown[i-1] + i
		}
		c.markers = grown
	}
	return c.markers[n]
}

// Binomial returns the binomial coefficient C(n, k). It returns 0 for k
// outside [0, n] and for negative n.
func Binomial(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	return coeffs.row(n)[k]
}

// row returns row n of Pascal's triangle. The returned slice must not be
// modified.
func (c *coefficients) row(n int) []float64 {
	c.mu.RLock()
	if n < len(c.binomial) {
		r := c.binomial[n]
		c.mu.RUnlock()
		return r
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if n >= len(c.binomial) {
		grown := make([][]float64, len(c.binomial), n+1)
		copy(grown, c.binomial)
		for len(grown) <= n {
			prev := grown[len(grown)-1]
			next := make([]float64, len(prev)+1)
			next[0], next[len(prev)] = 1, 1
			for k := 1; k < len(prev); k++ {
				next[k] = prev[k] + prev[k-1]
			}
			grown = append(grown, next)
		}
		c.binomial = grown
	}
	return c.binomial[n]
}
