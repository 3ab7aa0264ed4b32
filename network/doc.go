// Package network provides the scalar-valued contact network used as the
// substrate for diffusion and epidemic simulations.
//
// A Network N = (V, L) holds:
//
//   - one float64 value per node, the node ID being its 0-based index;
//   - a set of undirected links, stored as one adjacency set per node
//     (links[a][b] and links[b][a] are always written together).
//
// Invariants maintained by every mutator:
//
//   - no self links (a, a);
//   - no parallel links between the same unordered pair;
//   - symmetry: b ∈ Neighbors(a) ⇔ a ∈ Neighbors(b);
//   - newly added links only reference IDs in [0, Size()).
//
// Resize deliberately keeps existing links: shrinking the network leaves
// dangling entries that stay visible through Degree and Neighbors. Call
// RandomConnect or ClearLinks after a shrink when that matters.
//
// Randomness flows through the Source interface, injected with WithSource:
//
//	net := network.New(network.WithSource(random.New(42)))
//	net.Resize(1000)
//	total := net.RandomConnect(4.0)
//
// Core methods:
//
//	// Values
//	Resize(n int)                      // O(n), redraws every value
//	SetValues(vals []float64) int      // O(n), links untouched
//	SetValue(id int, v float64)        // O(1)
//	Size() int                         // O(1)
//	Value(id int) float64              // O(1), panics out of range
//	Values() []float64                 // O(n) copy
//	SortedValues() []float64           // O(n log n), descending, stable
//
//	// Links
//	AddLink(a, b int) bool             // O(1) average
//	Link(a, b int) error               // O(1) average, sentinel errors
//	HasLink(a, b int) bool             // O(1)
//	Degree(id int) int                 // O(1)
//	Neighbors(id int) []int            // O(d log d), ascending
//	Links() [][2]int                   // O(L log L)
//	LinkCount() int                    // O(1)
//	ClearLinks()                       // O(1)
//	RandomConnect(mean float64) int    // O(n²) worst case
//
// Errors:
//
//	ErrNodeOutOfRange – link endpoint outside [0, Size())
//	ErrSelfLink       – link from a node to itself
//	ErrDuplicateLink  – link between an already linked pair
//
// A Network is not safe for concurrent mutation; callers serialize access.
package network
