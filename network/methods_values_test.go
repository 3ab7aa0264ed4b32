// SPDX-License-Identifier: MIT
// Package network_test verifies node value lifecycle and ordering.

package network_test

import (
	"testing"

	"github.com/katalvlaran/contactnet/network"
	"github.com/katalvlaran/contactnet/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetwork_SetValues(t *testing.T) {
	net, src := newNetwork(t, 1.0, 2.0, 3.0)

	require.Equal(t, 3, net.Size())
	assert.Equal(t, 2.0, net.Value(1))
	assert.Zero(t, src.normalCalls, "SetValues must not draw randomness")

	// Caller mutation after SetValues must not leak in.
	in := []float64{4, 5}
	net.SetValues(in)
	in[0] = 99
	assert.Equal(t, 4.0, net.Value(0))
}

func TestNetwork_SetValuesKeepsLinks(t *testing.T) {
	net, _ := newNetwork(t, 0, 0, 0)
	require.True(t, net.AddLink(Node0, Node2))

	net.SetValues([]float64{7, 8, 9})
	assert.True(t, net.HasLink(Node2, Node0))
	assert.Equal(t, 1, net.LinkCount())
}

func TestNetwork_SetValue(t *testing.T) {
	net, _ := newNetwork(t, 1, 2)
	net.SetValue(Node1, 5)
	assert.Equal(t, []float64{1, 5}, net.Values())
	assert.Panics(t, func() { net.SetValue(2, 0) })
}

func TestNetwork_Resize(t *testing.T) {
	src := &stubSource{fill: 0.5}
	net := network.New(network.WithSource(src))

	net.Resize(5)
	require.Equal(t, 5, net.Size())
	for i := 0; i < net.Size(); i++ {
		assert.Equal(t, 0.5, net.Value(i))
	}
	assert.Equal(t, 1, src.normalCalls)

	// Shrinking redraws too.
	src.fill = -1
	net.Resize(2)
	assert.Equal(t, []float64{-1, -1}, net.Values())

	net.Resize(0)
	assert.Zero(t, net.Size())
	assert.Panics(t, func() { net.Resize(-1) })
}

func TestNetwork_ResizeRandomValues(t *testing.T) {
	a := network.New(network.WithSource(random.New(11)))
	b := network.New(network.WithSource(random.New(11)))
	a.Resize(64)
	b.Resize(64)
	assert.Equal(t, a.Values(), b.Values(), "same seed, same draws")

	// Default source is deterministic as well.
	c, d := network.New(), network.New()
	c.Resize(8)
	d.Resize(8)
	assert.Equal(t, c.Values(), d.Values())
}

func TestNetwork_ResizeKeepsDanglingLinks(t *testing.T) {
	net, _ := newNetwork(t, 0, 0, 0, 0)
	require.True(t, net.AddLink(Node0, Node3))
	require.True(t, net.AddLink(Node1, Node2))

	net.Resize(2)

	// Links to IDs >= 2 stay queryable.
	assert.Equal(t, 1, net.Degree(Node3))
	assert.Equal(t, []int{Node0}, net.Neighbors(Node3))
	assert.Equal(t, []int{Node3}, net.Neighbors(Node0))
	assert.Equal(t, 2, net.LinkCount())
	// Values beyond the new size are gone.
	assert.Panics(t, func() { net.Value(Node3) })
	// New links cannot reach the dangling IDs.
	assert.False(t, net.AddLink(Node0, Node3))
}

func TestNetwork_Value_OutOfRange(t *testing.T) {
	net, _ := newNetwork(t, 1)
	assert.Panics(t, func() { net.Value(1) })
	assert.Panics(t, func() { net.Value(-1) })
}

func TestNetwork_SortedValues(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"three", []float64{3, 1, 2}, []float64{3, 2, 1}},
		{"single", []float64{5}, []float64{5}},
		{"ascending", []float64{1, 2, 3, 4}, []float64{4, 3, 2, 1}},
		{"ties", []float64{2, 7, 2, -1, 7}, []float64{7, 7, 2, 2, -1}},
		{"negative", []float64{-3, -1, -2}, []float64{-1, -2, -3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			net, _ := newNetwork(t, tc.in...)
			assert.Equal(t, tc.want, net.SortedValues())
			// Node order is untouched.
			assert.Equal(t, tc.in, net.Values())
		})
	}
}

func TestNetwork_SortedValues_Empty(t *testing.T) {
	net := network.New()
	assert.Panics(t, func() { net.SortedValues() })
}
