// SPDX-License-Identifier: MIT
// Package: contactnet/analysis
//
// degree.go - Validate, Degrees, MeanDegree, DegreeHistogram.

package analysis

import "fmt"

// Validate checks the network invariants over IDs [0, Size()):
// no dangling neighbors, no self links, no duplicates, symmetry.
// The first violation found (ascending node ID) is returned, wrapped with context.
// Complexity: O(V + E) average.
func Validate(g Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.Size()
	adj := make([]map[int]struct{}, n)
	for i := 0; i < n; i++ {
		nbrs := g.Neighbors(i)
		set := make(map[int]struct{}, len(nbrs))
		for _, m := range nbrs {
			switch {
			case m < 0 || m >= n:
				return fmt.Errorf("node %d → %d (size=%d): %w", i, m, n, ErrDanglingLink)
			case m == i:
				return fmt.Errorf("node %d: %w", i, ErrSelfLink)
			}
			if _, dup := set[m]; dup {
				return fmt.Errorf("node %d → %d: %w", i, m, ErrDuplicateNeighbor)
			}
			set[m] = struct{}{}
		}
		adj[i] = set
	}
	for i, set := range adj {
		for m := range set {
			if _, ok := adj[m][i]; !ok {
				return fmt.Errorf("node %d → %d: %w", i, m, ErrAsymmetricLink)
			}
		}
	}

	return nil
}

// Degrees returns Degree(i) for every i in [0, Size()).
func Degrees(g Graph) []int {
	out := make([]int, g.Size())
	for i := range out {
		out[i] = g.Degree(i)
	}
	return out
}

// MeanDegree returns the average degree, 0 for an empty network.
func MeanDegree(g Graph) float64 {
	n := g.Size()
	if n == 0 {
		return 0
	}
	sum := 0
	for i := 0; i < n; i++ {
		sum += g.Degree(i)
	}
	return float64(sum) / float64(n)
}

// DegreeHistogram returns h where h[d] is the number of nodes with degree d.
// len(h) is max degree + 1, or 0 for an empty network.
func DegreeHistogram(g Graph) []int {
	var h []int
	for _, d := range Degrees(g) {
		for len(h) <= d {
			h = append(h, 0)
		}
		h[d]++
	}
	return h
}
