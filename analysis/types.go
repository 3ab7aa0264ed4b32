// SPDX-License-Identifier: MIT
// Package: contactnet/analysis
//
// types.go - Graph interface, Summary and sentinel errors.

package analysis

import "errors"

// Sentinel errors reported by Validate and the BFS helpers.
var (
	// ErrGraphNil is returned when a nil Graph is passed.
	ErrGraphNil = errors.New("analysis: graph is nil")

	// ErrStartNotFound is returned when a BFS start ID is outside [0, Size()).
	ErrStartNotFound = errors.New("analysis: start node not found")

	// ErrSelfLink reports a node listed among its own neighbors.
	ErrSelfLink = errors.New("analysis: self link")

	// ErrDuplicateNeighbor reports a neighbor listed more than once.
	ErrDuplicateNeighbor = errors.New("analysis: duplicate neighbor")

	// ErrAsymmetricLink reports a→b without b→a.
	ErrAsymmetricLink = errors.New("analysis: asymmetric link")

	// ErrDanglingLink reports a neighbor ID outside [0, Size()),
	// typically left behind by a shrinking Resize.
	ErrDanglingLink = errors.New("analysis: dangling link")
)

// Graph is the read-only view analysis needs.
type Graph interface {
	Size() int
	Degree(id int) int
	Neighbors(id int) []int
}

// Summary aggregates the structural statistics of a network.
type Summary struct {
	Nodes            int     `yaml:"nodes"`
	Links            int     `yaml:"links"`
	MeanDegree       float64 `yaml:"mean_degree"`
	MinDegree        int     `yaml:"min_degree"`
	MaxDegree        int     `yaml:"max_degree"`
	Isolated         int     `yaml:"isolated"`
	Components       int     `yaml:"components"`
	LargestComponent int     `yaml:"largest_component"`
}
