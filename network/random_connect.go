// SPDX-License-Identifier: MIT
// Package: contactnet/network
//
// random_connect.go - RandomConnect(mean), a configuration-model-like
// generator targeting an average degree.
//
// Model:
//   - For each node i asc: draw k ~ Poisson(mean), shuffle the pool of all IDs,
//     scan the pool from the front and keep the first k admissible partners.
//   - Rejected candidates (i itself, already linked) do not count toward k,
//     so the realized degree may fall short of k when the pool runs out.
//
// Determinism:
//   - Fixed node order and a single Source: same seed ⇒ same link set.

package network

import "fmt"

// RandomConnect removes every link, then rebuilds the link set so that the
// mean degree approaches meanDegree. It returns the number of successful
// AddLink calls, which is the number of undirected links created.
// Panics if meanDegree < 0 or NaN. +Inf saturates every node.
// Complexity: O(n²) worst case (one shuffle of n IDs per node).
func (net *Network) RandomConnect(meanDegree float64) int {
	if !(meanDegree >= 0) {
		panic(fmt.Sprintf("network: RandomConnect(%g): negative mean degree", meanDegree))
	}
	net.ClearLinks()

	n := len(net.values)
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	var total int
	for i := 0; i < n; i++ {
		want := net.src.Poisson(meanDegree)
		net.src.Shuffle(pool)

		done := 0
		for j := 0; done < want && j < n; j++ {
			if net.AddLink(i, pool[j]) {
				done++
			}
		}
		total += done
	}

	return total
}
