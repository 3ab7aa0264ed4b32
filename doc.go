// Package contactnet is a small toolkit for random contact networks used
// by diffusion and epidemic simulations.
//
// What is in the box:
//
//	network/  - Network: scalar node values, symmetric links, RandomConnect
//	random/   - seeded normal / Poisson / shuffle source with substreams
//	analysis/ - invariant checks, degree statistics, BFS components
//	codec/    - YAML snapshots of a network
//	cmd/netgen - CLI to generate snapshots and print their statistics
//
// Quick start:
//
//	net := network.New(network.WithSource(random.New(42)))
//	net.Resize(1000)          // 1000 nodes, values ~ N(0,1)
//	net.RandomConnect(4.0)    // ~Poisson(4) new links drawn per node
//
//	go get github.com/katalvlaran/contactnet
package contactnet
