// SPDX-License-Identifier: MIT
// Package network_test contains shared fixtures for network tests.

package network_test

import (
	"testing"

	"github.com/katalvlaran/contactnet/network"
	"github.com/stretchr/testify/require"
)

// Common node IDs used across tests.
const (
	Node0 = 0
	Node1 = 1
	Node2 = 2
	Node3 = 3
)

// stubSource is a scripted Source: Normal writes fill, Poisson always
// returns k, Shuffle leaves the slice in ascending order.
type stubSource struct {
	fill        float64
	k           int
	normalCalls int
	shuffles    int
}

func (s *stubSource) Normal(buf []float64) {
	s.normalCalls++
	for i := range buf {
		buf[i] = s.fill
	}
}

func (s *stubSource) Poisson(float64) int { return s.k }

func (s *stubSource) Shuffle(ids []int) {
	s.shuffles++
	for i := range ids {
		ids[i] = i
	}
}

// newNetwork RETURNS a network with the given values and a stub source.
func newNetwork(t *testing.T, vals ...float64) (*network.Network, *stubSource) {
	t.Helper()
	src := &stubSource{}
	net := network.New(network.WithSource(src))
	require.Equal(t, len(vals), net.SetValues(vals))

	return net, src
}

// requireInvariants checks range, self-link, duplicate and symmetry
// invariants for every node of net.
func requireInvariants(t *testing.T, net *network.Network) {
	t.Helper()
	sum := 0
	for i := 0; i < net.Size(); i++ {
		nbrs := net.Neighbors(i)
		require.Len(t, nbrs, net.Degree(i), "degree(%d)", i)
		seen := make(map[int]bool, len(nbrs))
		for _, m := range nbrs {
			require.NotEqual(t, i, m, "self link at %d", i)
			require.False(t, seen[m], "duplicate neighbor %d of %d", m, i)
			seen[m] = true
			require.True(t, m >= 0 && m < net.Size(), "neighbor %d of %d out of range", m, i)
			require.Contains(t, net.Neighbors(m), i, "asymmetric link %d-%d", i, m)
		}
		sum += len(nbrs)
	}
	require.Equal(t, 2*net.LinkCount(), sum, "handshake lemma")
}
