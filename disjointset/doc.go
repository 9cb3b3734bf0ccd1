// Package disjointset implements a union-find (disjoint-set) structure over
// elements of any comparable type. The classic formulation only handles
// integer elements; here each element is mapped to a stable internal index at
// insertion, so arbitrary values can be partitioned without the caller
// managing indices.
//
// The structure pairs union by rank with path splitting during finds, giving
// near-constant amortized time for every operation.
//
// Key features:
//   - Generic over any comparable element type
//   - O(lg* n) amortized union, find, and connectivity queries
//   - Append-only: elements are added once and never removed
//   - Full partition snapshots for inspection and testing
//
// Basic usage:
//
//	ds := disjointset.New([]string{"a", "b", "c", "d"})
//
//	ds.Unite("a", "b")
//	ds.Unite("c", "d")
//	ds.Unite("a", "d")
//
//	connected, _ := ds.AreConnected("b", "c") // true
//
//	// Grow the universe later
//	ds.Add("e")
//
//	for root, set := range ds.Sets() {
//	    fmt.Println(root, set)
//	}
package disjointset
