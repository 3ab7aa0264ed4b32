// SPDX-License-Identifier: MIT
// Package random verifies seed policy, draw distributions and substreams.

package random

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedPolicy(t *testing.T) {
	assert.Equal(t, defaultSeed, New(0).Seed(), "zero seed maps to default")
	assert.Equal(t, int64(99), New(99).Seed())

	a, b := New(5), New(5)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Poisson(3), b.Poisson(3))
	}
}

func TestFromRand(t *testing.T) {
	assert.Panics(t, func() { FromRand(nil) })
	r := FromRand(rand.New(rand.NewSource(1)))
	assert.Zero(t, r.Seed())
	buf := make([]float64, 4)
	r.Normal(buf)
	assert.NotEqual(t, []float64{0, 0, 0, 0}, buf)
}

func TestWithNormal(t *testing.T) {
	assert.Panics(t, func() { WithNormal(0, -1) })

	r := New(1, WithNormal(10, 0))
	buf := make([]float64, 5)
	r.Normal(buf)
	for _, v := range buf {
		assert.Equal(t, 10.0, v, "stddev 0 collapses to the mean")
	}
}

func TestNormal_Moments(t *testing.T) {
	r := New(17, WithNormal(2, 3))
	buf := make([]float64, 20000)
	r.Normal(buf)

	var sum, sq float64
	for _, v := range buf {
		sum += v
	}
	mean := sum / float64(len(buf))
	for _, v := range buf {
		sq += (v - mean) * (v - mean)
	}
	sd := math.Sqrt(sq / float64(len(buf)-1))
	assert.InDelta(t, 2.0, mean, 0.1)
	assert.InDelta(t, 3.0, sd, 0.1)
}

func TestPoisson_Degenerate(t *testing.T) {
	r := New(1)
	for _, mean := range []float64{0, -2, math.NaN()} {
		assert.Zero(t, r.Poisson(mean), "mean=%v", mean)
	}
}

func TestPoisson_HugeMeans(t *testing.T) {
	r := New(1)
	for _, mean := range []float64{1e19, 1e300, math.MaxFloat64, math.Inf(1)} {
		for i := 0; i < 50; i++ {
			k := r.Poisson(mean)
			require.GreaterOrEqual(t, k, 0, "mean=%g", mean)
			require.Equal(t, math.MaxInt, k, "mean=%g saturates", mean)
		}
	}
	// Just below the cap the draw stays exact-ish and non-negative.
	k := r.Poisson(1e15)
	assert.InDelta(t, 1e15, float64(k), 1e9)
}

func TestSaturate(t *testing.T) {
	assert.Equal(t, 7, saturate(7))
	assert.Equal(t, math.MaxInt, saturate(float64(math.MaxInt)))
	assert.Equal(t, math.MaxInt, saturate(math.Inf(1)))
}

func TestPoisson_Moments(t *testing.T) {
	// Both branches: multiplication (<10) and PTRS (>=10).
	for _, mean := range []float64{0.5, 4, 9.5, 10, 25, 300} {
		r := New(int64(mean*100) + 1)
		const draws = 20000
		var sum, sq float64
		for i := 0; i < draws; i++ {
			k := r.Poisson(mean)
			require.GreaterOrEqual(t, k, 0)
			sum += float64(k)
			sq += float64(k) * float64(k)
		}
		m := sum / draws
		v := sq/draws - m*m
		// Standard error of the mean is sqrt(mean/draws); allow ~5 sigma.
		tol := 5 * math.Sqrt(mean/draws)
		assert.InDelta(t, mean, m, tol, "mean=%g", mean)
		assert.InDelta(t, mean, v, 0.1*mean+tol, "variance for mean=%g", mean)
	}
}

func TestShuffle_Permutation(t *testing.T) {
	r := New(3)
	ids := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	r.Shuffle(ids)

	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted)

	r.Shuffle(nil) // no-op
}

func TestDerive(t *testing.T) {
	a, b := New(8).Derive(1), New(8).Derive(1)
	assert.Equal(t, a.Seed(), b.Seed(), "derivation is deterministic")

	base := New(8)
	c1, c2 := base.Derive(1), base.Derive(2)
	assert.NotEqual(t, c1.Seed(), c2.Seed())

	parent := New(4, WithNormal(5, 0))
	child := parent.Derive(0)
	buf := make([]float64, 1)
	child.Normal(buf)
	assert.Equal(t, 5.0, buf[0], "normal parameters are inherited")
}

func TestDeriveSeed_Avalanche(t *testing.T) {
	assert.NotEqual(t, deriveSeed(1, 0), deriveSeed(1, 1))
	assert.NotEqual(t, deriveSeed(1, 0), deriveSeed(2, 0))
	assert.Equal(t, deriveSeed(9, 3), deriveSeed(9, 3))
}
