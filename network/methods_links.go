// SPDX-License-Identifier: MIT
// Package: contactnet/network
//
// methods_links.go - link lifecycle and queries:
// AddLink/Link/HasLink/Degree/Neighbors/Links/LinkCount/ClearLinks.
//
// Determinism:
//   - Neighbors() returns IDs ascending.
//   - Links() returns pairs {a,b} with a<b, sorted by (a,b).
// AI-HINT (file):
//   - A rejected Link never mutates the network (all-or-nothing).
//   - Both adjacency sides are written inside the same call.

package network

import (
	"fmt"
	"sort"
)

// AddLink adds an undirected link between a and b and reports success.
// It fails, without mutation, for out-of-range IDs, a==b, or an existing link.
// Complexity: O(1) average.
func (net *Network) AddLink(a, b int) bool {
	return net.link(a, b) == nil
}

// Link is AddLink with the rejection reason:
// ErrNodeOutOfRange, ErrSelfLink or ErrDuplicateLink, wrapped with the pair.
// Complexity: O(1) average.
func (net *Network) Link(a, b int) error {
	if err := net.link(a, b); err != nil {
		return fmt.Errorf("link(%d,%d) size=%d: %w", a, b, len(net.values), err)
	}
	return nil
}

// link validates and inserts a-b; rejections return the bare sentinel.
func (net *Network) link(a, b int) error {
	n := len(net.values)
	if a < 0 || a >= n || b < 0 || b >= n {
		return ErrNodeOutOfRange
	}
	if a == b {
		return ErrSelfLink
	}
	if _, ok := net.links[a][b]; ok {
		return ErrDuplicateLink
	}

	net.adjacency(a)[b] = struct{}{}
	net.adjacency(b)[a] = struct{}{}
	net.edges++

	return nil
}

// HasLink reports whether a and b are linked. Works in both directions.
func (net *Network) HasLink(a, b int) bool {
	_, ok := net.links[a][b]
	return ok
}

// Degree returns the number of links incident to id.
// IDs left dangling by a shrinking Resize still report their links;
// any other id outside [0, Size()) panics.
func (net *Network) Degree(id int) int {
	return len(net.incident(id))
}

// Neighbors returns every node linked to id, ascending.
// Out-of-range ids follow the Degree contract.
// Complexity: O(d log d).
func (net *Network) Neighbors(id int) []int {
	adj := net.incident(id)
	out := make([]int, 0, len(adj))
	for m := range adj {
		out = append(out, m)
	}
	sort.Ints(out)

	return out
}

// Links returns each undirected link once as {a, b} with a < b,
// sorted by a then b.
// Complexity: O(L log L).
func (net *Network) Links() [][2]int {
	out := make([][2]int, 0, net.edges)
	for a, adj := range net.links {
		for b := range adj {
			if a < b {
				out = append(out, [2]int{a, b})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

// LinkCount returns the number of undirected links.
func (net *Network) LinkCount() int {
	return net.edges
}

// ClearLinks removes every link; node values are kept.
func (net *Network) ClearLinks() {
	net.links = make(map[int]map[int]struct{})
	net.edges = 0
}

// incident returns the adjacency set of id (nil if unlinked).
// Panics when id is outside [0, Size()) and has no stored links.
func (net *Network) incident(id int) map[int]struct{} {
	adj, ok := net.links[id]
	if !ok && (id < 0 || id >= len(net.values)) {
		panic(fmt.Sprintf("network: node %d out of range [0,%d)", id, len(net.values)))
	}
	return adj
}

// adjacency returns the adjacency set of id, creating it on first use.
func (net *Network) adjacency(id int) map[int]struct{} {
	adj, ok := net.links[id]
	if !ok {
		adj = make(map[int]struct{})
		net.links[id] = adj
	}
	return adj
}
