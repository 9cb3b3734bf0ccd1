// Package heap implements a generic array-backed d-ary heap. A single Heap
// type covers binary and K-ary shapes: the arity is fixed at construction,
// the tree-shape math (parent and child indexing) is shared, and the binary
// sift-down is unrolled as a fast path.
//
// Ordering is expressed as a violation comparator: cmp(parent, child) reports
// whether the pair breaks the heap property. The NewMin and NewMax factories
// derive the comparator from the natural ordering of the element type, so a
// min heap compares with greater-than and a max heap with less-than.
//
// Key features:
//   - Generic over any element type via a caller-supplied comparator
//   - Min/max binary and K-ary variants behind one type
//   - O(n) construction from an arbitrary slice, skippable for input that is
//     already heap-ordered
//   - O(log n) push and pop
//   - Swap observer hook for wrappers that track element positions
//
// Basic usage:
//
//	// Build a binary min heap from a slice
//	h := heap.NewMin([]int{30, 1, 50, 20})
//
//	top, _ := h.Peek() // 1
//	h.Push(7)
//
//	for !h.IsEmpty() {
//	    v, _ := h.Pop()
//	    fmt.Println(v) // 1, 7, 20, 30, 50
//	}
//
//	// A 4-ary max heap over strings
//	k := heap.NewMaxK(4, []string{"b", "a", "c"})
//
// The FromOrdered option trusts the caller: passing a slice that is not a
// valid heap produces a heap that looks fine but pops elements in the wrong
// order, with no runtime detection.
package heap
