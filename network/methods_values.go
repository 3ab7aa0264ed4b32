// SPDX-License-Identifier: MIT
// Package: contactnet/network
//
// methods_values.go - node value lifecycle and queries:
// Resize/SetValues/SetValue/Size/Value/Values/SortedValues.
//
// Contract:
//   - Value/SetValue panic on out-of-range IDs (native slice indexing).
//   - SortedValues panics on an empty network.
//   - Resize and SetValues never touch links.

package network

import (
	"fmt"
	"sort"
)

// Resize sets the node count to n and redraws every node value from
// the Source's normal distribution. Existing links are kept as they are,
// including links whose endpoints are now >= n.
// Panics if n < 0.
// Complexity: O(n).
func (net *Network) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("network: Resize(%d): negative node count", n))
	}
	if cap(net.values) >= n {
		net.values = net.values[:n]
	} else {
		net.values = make([]float64, n)
	}
	net.src.Normal(net.values)
}

// SetValues replaces all node values with a copy of vals and returns
// the new node count. Links are left untouched.
// Complexity: O(len(vals)).
func (net *Network) SetValues(vals []float64) int {
	net.values = append(make([]float64, 0, len(vals)), vals...)

	return len(net.values)
}

// SetValue overwrites the value of node id. Panics if id is out of range.
func (net *Network) SetValue(id int, v float64) {
	net.values[id] = v
}

// Size returns the current node count.
func (net *Network) Size() int {
	return len(net.values)
}

// Value returns the scalar of node id. Panics if id is out of range.
func (net *Network) Value(id int) float64 {
	return net.values[id]
}

// Values returns a copy of all node values in ID order.
func (net *Network) Values() []float64 {
	return append([]float64(nil), net.values...)
}

// SortedValues returns all node values in non-increasing order.
// Equal values keep their relative ID order.
// Panics on a network with zero nodes.
// Complexity: O(n log n).
func (net *Network) SortedValues() []float64 {
	if len(net.values) == 0 {
		panic("network: SortedValues on empty network")
	}
	out := net.Values()
	sort.SliceStable(out, func(i, j int) bool { return out[i] > out[j] })

	return out
}
