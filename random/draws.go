// SPDX-License-Identifier: MIT
// Package: contactnet/random
//
// draws.go - Normal, Poisson and Shuffle.
//
// Poisson:
//   - mean <= 0 or NaN    ⇒ 0.
//   - mean == +Inf        ⇒ math.MaxInt; finite draws saturate at math.MaxInt.
//   - mean < ptrsMinMean  ⇒ Knuth's multiplication method, O(mean).
//   - otherwise           ⇒ PTRS transformed rejection (Hörmann 1993), O(1) expected.

package random

import "math"

// ptrsMinMean is the mean from which Poisson switches to PTRS.
const ptrsMinMean = 10.0

// Normal fills buf with independent N(mean, stddev²) draws.
func (r *Rand) Normal(buf []float64) {
	for i := range buf {
		buf[i] = r.mean + r.stddev*r.rng.NormFloat64()
	}
}

// Poisson returns one sample from Poisson(mean). Non-positive or NaN
// means yield 0; the result never exceeds math.MaxInt.
func (r *Rand) Poisson(mean float64) int {
	if !(mean > 0) {
		return 0
	}
	if math.IsInf(mean, 1) {
		return math.MaxInt
	}
	if mean < ptrsMinMean {
		return r.poissonMult(mean)
	}
	return r.poissonPTRS(mean)
}

// Shuffle permutes ids in place (Fisher–Yates).
func (r *Rand) Shuffle(ids []int) {
	r.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
}

// poissonMult multiplies uniforms until the product drops below e^-mean.
func (r *Rand) poissonMult(mean float64) int {
	limit := math.Exp(-mean)
	k := 0
	prod := r.rng.Float64()
	for prod > limit {
		k++
		prod *= r.rng.Float64()
	}
	return k
}

// poissonPTRS implements the transformed rejection with squeeze.
func (r *Rand) poissonPTRS(mean float64) int {
	slam := math.Sqrt(mean)
	logLam := math.Log(mean)
	b := 0.931 + 2.53*slam
	a := -0.059 + 0.02483*b
	invAlpha := 1.1239 + 1.1328/(b-3.4)
	vr := 0.9277 - 3.6224/(b-2)

	for {
		u := r.rng.Float64() - 0.5
		v := r.rng.Float64()
		us := 0.5 - math.Abs(u)
		k := math.Floor((2*a/us+b)*u + mean + 0.43)

		if us >= 0.07 && v <= vr {
			return saturate(k)
		}
		if k < 0 || (us < 0.013 && v > us) {
			continue
		}
		lg, _ := math.Lgamma(k + 1)
		if math.Log(v)+math.Log(invAlpha)-math.Log(a/(us*us)+b) <= -mean+k*logLam-lg {
			return saturate(k)
		}
	}
}

// saturate converts a non-negative draw to int, capping at math.MaxInt.
func saturate(k float64) int {
	if k >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(k)
}
