// Package priority implements a heap-backed priority queue that associates an
// external, mutable priority key with each stored value. The queue keeps two
// maps next to the heap (value to key, value to heap index) so that key
// lookups and containment checks are O(1) while every mutation stays
// logarithmic. The heap reports each swap it performs through an observer
// hook, which is how the index map stays exact at all times.
//
// Key features:
//   - Generic over any key type (with a comparison function) and any
//     comparable value type
//   - Min and max variants over binary or K-ary backing heaps
//   - O(log n) push, pop, and key update; O(1) peek, key lookup, and
//     containment
//   - Key updates restricted to the heap-consistent direction, enforced with
//     a single comparison
//
// Values act as identities: they must be unique, and duplicate pushes are
// rejected. Keys carry the ordering and may repeat.
//
// Basic usage:
//
//	// Create a min queue from parallel key/value slices
//	pq := priority.NewMin(
//	    []int{5, 4, 1, 3, 6, 0, 2},
//	    []string{"m", "i", "n", "h", "e", "a", "p"},
//	)
//
//	// Values come out in ascending key order
//	for !pq.IsEmpty() {
//	    k, v, _ := pq.TopKeyValue()
//	    fmt.Printf("(%d, %s) ", k, v)
//	    pq.Pop()
//	}
//
//	// Keys may only move toward the queue's bias: decreases in a min queue
//	pq.Push(8, "x")
//	_ = pq.UpdateKey(2, "x")
//
// A key change against the queue's bias (an increase in a min queue, a
// decrease in a max queue) would require relocating the value from scratch,
// so UpdateKey rejects it with ErrWrongDirection instead of degrading to
// linear work.
package priority
