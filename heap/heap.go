package heap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned by Peek and Pop when the heap holds no elements.
var ErrEmpty = errors.New("heap: empty heap")

// Heap is an array-backed d-ary heap. The element at index 0 is always the
// extreme element under the heap's comparator.
//
// The comparator is a violation predicate rather than a plain ordering:
// cmp(parent, child) reports whether the pair breaks the heap property and
// must be swapped. A min heap therefore uses greater-than and a max heap uses
// less-than. The NewMin/NewMax factories encode this inversion so most callers
// never have to think about it.
type Heap[T any] struct {
	nodes  []T
	cmp    func(a, b T) bool
	arity  int
	onSwap func(i, j int)
}

// New creates a heap with the given violation comparator, taking ownership of
// items. Unless the FromOrdered option asserts the input already satisfies the
// heap property, the heap is built in place in O(n).
//
// New panics if an option carries an arity below 2.
func New[T any](cmp func(a, b T) bool, items []T, opts ...Option) *Heap[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.arity < 2 {
		panic("heap: arity must be at least 2")
	}

	h := &Heap[T]{
		nodes:  items,
		cmp:    cmp,
		arity:  o.arity,
		onSwap: o.onSwap,
	}

	if !o.ordered {
		h.Heapify()
	}

	return h
}

// NewMin creates a binary min heap over an ordered element type.
func NewMin[T constraints.Ordered](items []T, opts ...Option) *Heap[T] {
	return New(func(a, b T) bool { return a > b }, items, opts...)
}

// NewMax creates a binary max heap over an ordered element type.
func NewMax[T constraints.Ordered](items []T, opts ...Option) *Heap[T] {
	return New(func(a, b T) bool { return a < b }, items, opts...)
}

// NewMinK creates a K-ary min heap over an ordered element type.
func NewMinK[T constraints.Ordered](k int, items []T, opts ...Option) *Heap[T] {
	return NewMin(items, append([]Option{WithArity(k)}, opts...)...)
}

// NewMaxK creates a K-ary max heap over an ordered element type.
func NewMaxK[T constraints.Ordered](k int, items []T, opts ...Option) *Heap[T] {
	return NewMax(items, append([]Option{WithArity(k)}, opts...)...)
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.nodes)
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.nodes) == 0
}

// Peek returns the extreme element without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.nodes) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.nodes[0], nil
}

// At returns the element currently stored at index i. It panics when i is out
// of range. Positions other than 0 carry no ordering guarantee; At exists for
// wrappers that track element positions through a swap observer.
func (h *Heap[T]) At(i int) T {
	return h.nodes[i]
}

// Push appends x and sifts it toward the root until the heap property holds.
// Amortized O(log_arity n).
func (h *Heap[T]) Push(x T) {
	h.nodes = append(h.nodes, x)
	h.SiftUp(len(h.nodes) - 1)
}

// Pop removes and returns the extreme element. The last element replaces the
// root and is sifted down. O(arity * log_arity n) amortized.
func (h *Heap[T]) Pop() (T, error) {
	if len(h.nodes) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	top := h.nodes[0]
	last := len(h.nodes) - 1
	h.nodes[0] = h.nodes[last]
	h.nodes = h.nodes[:last]

	if last > 0 {
		h.SiftDown(0)
	}

	return top, nil
}

// SiftUp moves the element at index i toward the root until it no longer
// violates the heap property against its parent. It is exported for wrappers
// that mutate an element's ordering key in the favored direction.
func (h *Heap[T]) SiftUp(i int) {
	for i > 0 {
		p := (i - 1) / h.arity
		if !h.cmp(h.nodes[p], h.nodes[i]) {
			return
		}
		h.swap(p, i)
		i = p
	}
}

// SiftDown moves the element at index i toward the leaves, at each level
// swapping with the child that most violates the heap property. Ties between
// equally violating children resolve to the lowest child index.
func (h *Heap[T]) SiftDown(i int) {
	if h.arity == 2 {
		h.siftDownBinary(i)
		return
	}
	h.siftDownK(i)
}

// siftDownBinary is the unrolled arity-2 descent.
func (h *Heap[T]) siftDownBinary(i int) {
	n := len(h.nodes)
	for {
		best := i
		l := 2*i + 1
		r := 2*i + 2

		if l < n && h.cmp(h.nodes[best], h.nodes[l]) {
			best = l
		}
		if r < n && h.cmp(h.nodes[best], h.nodes[r]) {
			best = r
		}

		if best == i {
			return
		}

		h.swap(i, best)
		i = best
	}
}

// siftDownK scans up to arity children per level, left to right.
func (h *Heap[T]) siftDownK(i int) {
	n := len(h.nodes)
	for {
		first := h.arity*i + 1
		if first >= n {
			return
		}

		best := i
		for j := 0; j < h.arity; j++ {
			c := first + j
			if c >= n {
				break
			}
			if h.cmp(h.nodes[best], h.nodes[c]) {
				best = c
			}
		}

		if best == i {
			return
		}

		h.swap(i, best)
		i = best
	}
}

// Heapify restores the heap property over the whole slice by sifting down
// every internal node in reverse level order, which bounds the total work at
// O(n). New calls it automatically unless FromOrdered deferred the build;
// wrappers that must finish their own bookkeeping before the first swap can
// construct with FromOrdered and invoke Heapify afterwards.
func (h *Heap[T]) Heapify() {
	if len(h.nodes) < 2 {
		return
	}
	for i := (len(h.nodes) - 2) / h.arity; i >= 0; i-- {
		h.SiftDown(i)
	}
}

func (h *Heap[T]) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	if h.onSwap != nil {
		h.onSwap(i, j)
	}
}
