package disjointset

import (
	"errors"

	"github.com/jkomyno/jkds/functional"
	"github.com/jkomyno/jkds/seq"
)

// Common errors returned by set operations.
var (
	ErrDuplicateElement = errors.New("disjointset: element already added")
	ErrUnknownElement   = errors.New("disjointset: element never added")
)

// node is one entry of the union-find forest. A node whose parent is its own
// index is the representative of its set.
type node struct {
	parent int
	rank   int
}

// Set partitions elements of any comparable type into disjoint sets. Each
// element is assigned a slice index at insertion; the index is stable for the
// lifetime of the structure, even across unions.
type Set[T comparable] struct {
	nodes   []node
	indexOf map[T]int
}

// New creates a disjoint set with one singleton per input element. Elements
// are assumed distinct.
func New[T comparable](items []T) *Set[T] {
	n := len(items)

	// every element starts as the parent of itself with rank 0
	nodes := functional.Fmap(func(parent int) node {
		return node{parent: parent}
	}, seq.RangeN[int](n))

	indexOf := make(map[T]int, n)
	for x, i := range functional.Zip(items, seq.RangeN[int](n)) {
		indexOf[x] = i
	}

	return &Set[T]{
		nodes:   nodes,
		indexOf: indexOf,
	}
}

// Len returns the number of elements ever added.
func (s *Set[T]) Len() int {
	return len(s.nodes)
}

// Add inserts x as a new singleton and returns its index. It returns
// ErrDuplicateElement when x is already present. O(1) amortized.
func (s *Set[T]) Add(x T) (int, error) {
	if _, ok := s.indexOf[x]; ok {
		return 0, ErrDuplicateElement
	}

	i := len(s.nodes)
	s.nodes = append(s.nodes, node{parent: i})
	s.indexOf[x] = i

	return i, nil
}

// Find returns the index of the representative of the set containing x.
// It compresses the traversed path as a side effect, so the structure
// mutates, but the returned representative grouping never changes.
func (s *Set[T]) Find(x T) (int, error) {
	i, ok := s.indexOf[x]
	if !ok {
		return 0, ErrUnknownElement
	}
	return s.find(i), nil
}

// Unite merges the sets containing x and y. It is a no-op when they already
// share a representative. O(lg* n) amortized.
func (s *Set[T]) Unite(x, y T) error {
	xi, ok := s.indexOf[x]
	if !ok {
		return ErrUnknownElement
	}
	yi, ok := s.indexOf[y]
	if !ok {
		return ErrUnknownElement
	}

	i := s.find(xi)
	j := s.find(yi)

	if i == j {
		return nil
	}

	// attach the lower-rank tree under the higher-rank root
	if s.nodes[i].rank < s.nodes[j].rank {
		i, j = j, i
	}

	s.nodes[j].parent = i

	// on equal ranks the surviving root grows one unit taller
	if s.nodes[i].rank == s.nodes[j].rank {
		s.nodes[i].rank++
	}

	return nil
}

// AreConnected reports whether x and y are in the same set. O(lg* n)
// amortized.
func (s *Set[T]) AreConnected(x, y T) (bool, error) {
	xi, ok := s.indexOf[x]
	if !ok {
		return false, ErrUnknownElement
	}
	yi, ok := s.indexOf[y]
	if !ok {
		return false, ErrUnknownElement
	}

	return s.find(xi) == s.find(yi), nil
}

// Sets snapshots the current partition as a map from representative index to
// the elements of that set. The element order within a set is unspecified.
// O(n + lg* n).
func (s *Set[T]) Sets() map[int][]T {
	sets := make(map[int][]T)
	for x, i := range s.indexOf {
		root := s.find(i)
		sets[root] = append(sets[root], x)
	}
	return sets
}

// find walks parent links to the root, rewriting each visited node's parent
// to its grandparent along the way (path splitting), which keeps future
// walks short.
func (s *Set[T]) find(i int) int {
	for i != s.nodes[i].parent {
		grandparent := s.nodes[s.nodes[i].parent].parent
		s.nodes[i].parent = grandparent
		i = grandparent
	}
	return i
}
