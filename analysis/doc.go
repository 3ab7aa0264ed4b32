// Package analysis provides read-only queries over a contact network:
// invariant validation, degree statistics, and breadth-first connectivity.
//
// All functions accept the narrow Graph interface, satisfied by
// *network.Network, and never mutate it.
//
//	net.RandomConnect(4)
//	if err := analysis.Validate(net); err != nil { ... }
//	sum, err := analysis.Summarize(ctx, net)
//
// The BFS-based functions honor context cancellation once per dequeued node
// and once per scanned neighbor.
package analysis
