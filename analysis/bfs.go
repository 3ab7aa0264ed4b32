// SPDX-License-Identifier: MIT
// Package: contactnet/analysis
//
// bfs.go - breadth-first Distances, Components and Summarize.
//
// Determinism:
//   - Components are discovered from the smallest unvisited ID; each component
//     is returned ascending, and components are ordered by their smallest ID.
// AI-HINT (file):
//   - Neighbor IDs outside [0, Size()) are skipped, never visited.

package analysis

import (
	"context"
	"fmt"
	"sort"
)

// walker encapsulates mutable BFS state shared across searches.
type walker struct {
	g     Graph
	ctx   context.Context
	n     int
	queue []int
	dist  []int // -1 = unvisited
}

func newWalker(ctx context.Context, g Graph) *walker {
	if ctx == nil {
		ctx = context.Background()
	}
	n := g.Size()
	w := &walker{g: g, ctx: ctx, n: n, queue: make([]int, 0, n), dist: make([]int, n)}
	for i := range w.dist {
		w.dist[i] = -1
	}
	return w
}

// run explores from start and returns the visit order.
func (w *walker) run(start int) ([]int, error) {
	order := make([]int, 0)
	w.dist[start] = 0
	w.queue = append(w.queue[:0], start)
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return order, err
		}
		cur := w.queue[0]
		w.queue = w.queue[1:]
		order = append(order, cur)

		for _, nbr := range w.g.Neighbors(cur) {
			if err := w.ctx.Err(); err != nil {
				return order, err
			}
			if nbr < 0 || nbr >= w.n || w.dist[nbr] >= 0 {
				continue
			}
			w.dist[nbr] = w.dist[cur] + 1
			w.queue = append(w.queue, nbr)
		}
	}
	return order, nil
}

// Distances returns the hop distance from start to every node,
// -1 for unreachable nodes.
func Distances(ctx context.Context, g Graph, start int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 0 || start >= g.Size() {
		return nil, fmt.Errorf("start=%d size=%d: %w", start, g.Size(), ErrStartNotFound)
	}
	w := newWalker(ctx, g)
	if _, err := w.run(start); err != nil {
		return nil, err
	}
	return w.dist, nil
}

// Components returns the connected components of g.
// Isolated nodes form singleton components.
// Complexity: O(V + E·log d) (Neighbors sorts per node).
func Components(ctx context.Context, g Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	w := newWalker(ctx, g)
	var comps [][]int
	for i := 0; i < w.n; i++ {
		if w.dist[i] >= 0 {
			continue
		}
		order, err := w.run(i)
		if err != nil {
			return nil, err
		}
		sort.Ints(order)
		comps = append(comps, order)
	}
	return comps, nil
}

// Summarize computes a Summary of g.
func Summarize(ctx context.Context, g Graph) (Summary, error) {
	if g == nil {
		return Summary{}, ErrGraphNil
	}
	degrees := Degrees(g)
	s := Summary{Nodes: len(degrees)}
	sum := 0
	for i, d := range degrees {
		sum += d
		if i == 0 || d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
		if d == 0 {
			s.Isolated++
		}
	}
	s.Links = sum / 2
	if s.Nodes > 0 {
		s.MeanDegree = float64(sum) / float64(s.Nodes)
	}

	comps, err := Components(ctx, g)
	if err != nil {
		return Summary{}, err
	}
	s.Components = len(comps)
	for _, c := range comps {
		if len(c) > s.LargestComponent {
			s.LargestComponent = len(c)
		}
	}
	return s, nil
}
