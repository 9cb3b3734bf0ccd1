package priority

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/jkomyno/jkds/functional"
	"github.com/jkomyno/jkds/heap"
	"github.com/jkomyno/jkds/seq"
)

// Common errors returned by queue operations.
var (
	ErrEmpty          = errors.New("priority: empty queue")
	ErrDuplicateValue = errors.New("priority: value already in the queue")
	ErrUnknownValue   = errors.New("priority: value not in the queue")
	ErrWrongDirection = errors.New("priority: key update against the queue direction")
)

// Queue associates a mutable priority key with each stored value. Values must
// be unique and hashable; keys order the underlying heap, so the value with
// the most favored key is always on top.
//
// Two auxiliary maps keep lookups cheap: keyOf holds each value's current
// key, indexOf its current position in the heap. The heap reports every swap
// it performs through its observer hook, which is how indexOf stays exact
// through push, pop, and key updates.
type Queue[K any, V comparable] struct {
	h       *heap.Heap[V]
	keyOf   map[V]K
	indexOf map[V]int
	less    func(a, b K) bool // reports whether a is more favored than b
}

// New creates a queue ordered by the given comparison: less(a, b) reports
// whether key a has higher priority than key b. The keys and values slices
// are paired positionally; if they differ in length the surplus of the longer
// one is ignored. Values are assumed distinct.
//
// The queue takes ownership of the values slice.
func New[K any, V comparable](less func(a, b K) bool, keys []K, values []V, opts ...Option) *Queue[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := min(len(keys), len(values))
	values = values[:n]

	q := &Queue[K, V]{
		keyOf:   make(map[V]K, n),
		indexOf: make(map[V]int, n),
		less:    less,
	}

	for v, k := range functional.Zip(values, keys) {
		q.keyOf[v] = k
	}
	for v, i := range functional.Zip(values, seq.RangeN[int](n)) {
		q.indexOf[v] = i
	}

	// the build is deferred until the maps and the heap handle exist,
	// because build swaps are reported through the observer
	q.h = heap.New(q.violates, values,
		heap.WithSwapObserver(q.syncSwap),
		heap.WithArity(o.arity),
		heap.FromOrdered(),
	)
	if !o.ordered {
		q.h.Heapify()
	}

	return q
}

// NewMin creates a queue over an ordered key type where smaller keys have
// higher priority.
func NewMin[K constraints.Ordered, V comparable](keys []K, values []V, opts ...Option) *Queue[K, V] {
	return New[K, V](func(a, b K) bool { return a < b }, keys, values, opts...)
}

// NewMax creates a queue over an ordered key type where larger keys have
// higher priority.
func NewMax[K constraints.Ordered, V comparable](keys []K, values []V, opts ...Option) *Queue[K, V] {
	return New[K, V](func(a, b K) bool { return a > b }, keys, values, opts...)
}

// Len returns the number of values in the queue.
func (q *Queue[K, V]) Len() int {
	return q.h.Len()
}

// IsEmpty reports whether the queue holds no values.
func (q *Queue[K, V]) IsEmpty() bool {
	return q.h.IsEmpty()
}

// Push inserts value with the given priority key. It returns
// ErrDuplicateValue when the value is already present.
func (q *Queue[K, V]) Push(key K, value V) error {
	if _, ok := q.indexOf[value]; ok {
		return ErrDuplicateValue
	}

	q.keyOf[value] = key
	q.indexOf[value] = q.h.Len()
	q.h.Push(value)

	return nil
}

// Pop removes and returns the value with the most favored key. Both of the
// value's bookkeeping entries are erased before the heap shrinks.
func (q *Queue[K, V]) Pop() (V, error) {
	top, err := q.h.Peek()
	if err != nil {
		var zero V
		return zero, ErrEmpty
	}

	delete(q.keyOf, top)
	delete(q.indexOf, top)
	_, _ = q.h.Pop()

	// the element moved from the last slot to the root is not a swap the
	// observer sees, so its index is refreshed here
	if !q.h.IsEmpty() {
		q.indexOf[q.h.At(0)] = 0
	}

	return top, nil
}

// UpdateKey changes the priority of a stored value. The new key must not move
// the value against the queue's bias: in a min queue keys may only decrease,
// in a max queue only increase. A violating update is rejected with
// ErrWrongDirection, a cheap check that keeps every update O(log n).
// Updating to an equally favored key is a no-op on the ordering.
func (q *Queue[K, V]) UpdateKey(key K, value V) error {
	i, ok := q.indexOf[value]
	if !ok {
		return ErrUnknownValue
	}
	if q.less(q.keyOf[value], key) {
		return ErrWrongDirection
	}

	q.keyOf[value] = key

	// the key moved toward the favored extreme, so the value can only
	// travel toward the root
	q.h.SiftUp(i)

	return nil
}

// Contains reports whether value is in the queue. O(1) amortized.
func (q *Queue[K, V]) Contains(value V) bool {
	_, ok := q.indexOf[value]
	return ok
}

// KeyAt returns the priority key currently associated with value.
func (q *Queue[K, V]) KeyAt(value V) (K, error) {
	k, ok := q.keyOf[value]
	if !ok {
		var zero K
		return zero, ErrUnknownValue
	}
	return k, nil
}

// Top returns the value with the most favored key without removing it.
func (q *Queue[K, V]) Top() (V, error) {
	v, err := q.h.Peek()
	if err != nil {
		var zero V
		return zero, ErrEmpty
	}
	return v, nil
}

// TopKeyValue returns the most favored key together with its value, without
// removing them.
func (q *Queue[K, V]) TopKeyValue() (K, V, error) {
	v, err := q.h.Peek()
	if err != nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, ErrEmpty
	}
	return q.keyOf[v], v, nil
}

// violates is the heap's comparator: a parent violates the heap property
// when its child's key is more favored.
func (q *Queue[K, V]) violates(parent, child V) bool {
	return q.less(q.keyOf[child], q.keyOf[parent])
}

// syncSwap mirrors a heap swap into the index map.
func (q *Queue[K, V]) syncSwap(i, j int) {
	q.indexOf[q.h.At(i)] = i
	q.indexOf[q.h.At(j)] = j
}
