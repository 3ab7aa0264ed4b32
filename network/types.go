// SPDX-License-Identifier: MIT
// Package: contactnet/network
//
// types.go - Network, Source, Option, sentinel errors and the New constructor.

package network

import (
	"errors"

	"github.com/katalvlaran/contactnet/random"
)

// Sentinel errors for link mutation.
var (
	// ErrNodeOutOfRange indicates a link endpoint outside [0, Size()).
	ErrNodeOutOfRange = errors.New("network: node out of range")

	// ErrSelfLink indicates an attempt to link a node to itself.
	ErrSelfLink = errors.New("network: self link not allowed")

	// ErrDuplicateLink indicates the two nodes are already linked.
	ErrDuplicateLink = errors.New("network: duplicate link")
)

// defaultSeed seeds the Source used when no WithSource option is given.
const defaultSeed int64 = 1

// Source is the random capability a Network draws from.
//
// Normal fills buf with independent normal draws.
// Poisson returns one non-negative Poisson sample with the given mean.
// Shuffle permutes ids in place uniformly at random.
type Source interface {
	Normal(buf []float64)
	Poisson(mean float64) int
	Shuffle(ids []int)
}

// Option configures a Network before first use.
type Option func(*Network)

// WithSource injects the random source used by Resize and RandomConnect.
// Panics on nil to surface programmer error early.
func WithSource(src Source) Option {
	if src == nil {
		panic("network: WithSource(nil)")
	}
	return func(n *Network) { n.src = src }
}

// Network is an undirected graph of scalar-valued nodes.
//
// values[i] is the value of node i; links[a] is the adjacency set of a.
// Empty adjacency sets are removed so len(links) counts linked nodes only.
type Network struct {
	values []float64
	links  map[int]map[int]struct{}
	edges  int // undirected link count

	src Source
}

// New creates an empty Network (zero nodes, zero links).
// Without WithSource, a deterministic source seeded with defaultSeed is used.
// Complexity: O(1).
func New(opts ...Option) *Network {
	n := &Network{
		links: make(map[int]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.src == nil {
		n.src = random.New(defaultSeed)
	}

	return n
}
