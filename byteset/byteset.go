// Package byteset implements a fixed-capacity, append-only set of bytes using
// the sparse-set representation described in "An Efficient Representation for
// Sparse Sets" by Preston Briggs and Linda Torczon.
//
// A Sparse set never allocates after construction and every operation runs in
// constant time with a small constant factor, which can beat a 256-bit bitset
// when the set stays small.
package byteset

// Capacity is the number of distinct byte values a Sparse set can hold.
const Capacity = 256

// Sparse is an append-only set of bytes. The zero value is an empty set ready
// for use. Members can only be removed all at once via Reset.
type Sparse struct {
	// size can't be uint8: it must be able to reach Capacity
	size   uint16
	sparse [Capacity]uint8
	dense  [Capacity]uint8
}

// Add inserts b into the set. It reports whether b was absent before the call.
func (s *Sparse) Add(b uint8) bool {
	if s.Contains(b) {
		return false
	}

	s.dense[s.size] = b
	s.sparse[b] = uint8(s.size)
	s.size++
	return true
}

// Contains reports whether b is in the set.
func (s *Sparse) Contains(b uint8) bool {
	return uint16(s.sparse[b]) < s.size && s.dense[s.sparse[b]] == b
}

// Len returns the number of bytes in the set.
func (s *Sparse) Len() int {
	return int(s.size)
}

// Reset empties the set.
func (s *Sparse) Reset() {
	s.size = 0
	s.sparse = [Capacity]uint8{}
	s.dense = [Capacity]uint8{}
}
