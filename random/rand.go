// SPDX-License-Identifier: MIT
// Package: contactnet/random
//
// rand.go - Rand type, constructors, options and substream derivation.

package random

import "math/rand"

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// Default normal distribution parameters (standard normal).
const (
	defaultMean   = 0.0
	defaultStdDev = 1.0
)

// Option customizes a Rand at construction time.
type Option func(*Rand)

// WithNormal sets the mean and standard deviation used by Normal.
// Panics if stddev < 0.
func WithNormal(mean, stddev float64) Option {
	if stddev < 0 {
		panic("random: WithNormal(stddev<0)")
	}
	return func(r *Rand) {
		r.mean, r.stddev = mean, stddev
	}
}

// Rand is a seeded random source with normal, Poisson and shuffle draws.
type Rand struct {
	rng    *rand.Rand
	seed   int64
	mean   float64
	stddev float64
}

// New returns a Rand seeded deterministically.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func New(seed int64, opts ...Option) *Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	r := &Rand{
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
		mean:   defaultMean,
		stddev: defaultStdDev,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// FromRand wraps an existing *rand.Rand. Panics on nil.
// The caller keeps ownership of the seed policy; Seed reports 0.
func FromRand(rng *rand.Rand, opts ...Option) *Rand {
	if rng == nil {
		panic("random: FromRand(nil)")
	}
	r := &Rand{rng: rng, mean: defaultMean, stddev: defaultStdDev}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Seed returns the seed the stream was created with (0 for FromRand).
func (r *Rand) Seed() int64 {
	return r.seed
}

// Derive returns an independent deterministic stream for the given id.
// One value is consumed from r to decorrelate consecutive derivations.
// The derived stream inherits r's normal parameters.
func (r *Rand) Derive(stream uint64) *Rand {
	child := New(deriveSeed(r.rng.Int63(), stream))
	child.mean, child.stddev = r.mean, r.stddev

	return child
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
