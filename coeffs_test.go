package bezier

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkers(t *testing.T) {
	order := rand.New(rand.NewPCG(1, 2)).Perm(300)
	for _, n := range order {
		if got, want := Markers(n), n*(n+1)/2; got != want {
			t.Errorf("Markers(%d) = %d, want %d", n, got, want)
		}
	}
	assert.Equal(t, 3, Markers(-3))
}

var pascal = [][]float64{
	{1},
	{1, 1},
	{1, 2, 1},
	{1, 3, 3, 1},
	{1, 4, 6, 4, 1},
	{1, 5, 10, 10, 5, 1},
	{1, 6, 15, 20, 15, 6, 1},
	{1, 7, 21, 35, 35, 21, 7, 1},
	{1, 8, 28, 56, 70, 56, 28, 8, 1},
	{1, 9, 36, 84, 126, 126, 84, 36, 9, 1},
	{1, 10, 45, 120, 210, 252, 210, 120, 45, 10, 1},
}

func TestBinomial(t *testing.T) {
	check := func(t *testing.T, binom func(n, k int) float64) {
		t.Helper()
		for n, row := range pascal {
			for k, want := range row {
				if got := binom(n, k); got != want {
					t.Errorf("C(%d, %d) = %g, want %g", n, k, got, want)
				}
			}
		}
	}

	t.Run("shared", func(t *testing.T) {
		check(t, Binomial)
	})

	// The result mustn't depend on the order in which rows were grown.
	t.Run("descending", func(t *testing.T) {
		c := &coefficients{binomial: [][]float64{{1}}}
		for n := len(pascal) - 1; n >= 0; n-- {
			c.row(n)
		}
		check(t, func(n, k int) float64 { return c.row(n)[k] })
	})
	t.Run("large first", func(t *testing.T) {
		c := &coefficients{binomial: [][]float64{{1}}}
		c.row(40)
		check(t, func(n, k int) float64 { return c.row(n)[k] })
	})

	assert.Zero(t, Binomial(3, -1))
	assert.Zero(t, Binomial(3, 4))
	assert.Zero(t, Binomial(-1, 0))
}

func TestBinomialRowsStable(t *testing.T) {
	c := &coefficients{binomial: [][]float64{{1}}}
	row := c.row(5)
	c.row(60)
	assert.Equal(t, pascal[5], row)
	assert.Equal(t, pascal[5], c.row(5))
}

func TestCoefficientsConcurrent(t *testing.T) {
	c := &coefficients{markers: []int{0}, binomial: [][]float64{{1}}}
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range 50 {
				n = (n*7 + i*13) % 50
				c.marker(n)
				c.row(n)
			}
		}()
	}
	wg.Wait()
	for n := range 50 {
		assert.Equal(t, n*(n+1)/2, c.marker(n))
		row := c.row(n)
		assert.Len(t, row, n+1)
		assert.Equal(t, 1.0, row[0])
		assert.Equal(t, 1.0, row[n])
	}
	assert.Equal(t, pascal[10], c.row(10))
}
