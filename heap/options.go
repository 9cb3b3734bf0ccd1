package heap

// options defines the construction-time configuration of a Heap.
type options struct {
	arity   int
	ordered bool
	onSwap  func(i, j int)
}

// Option is a function that configures heap construction.
type Option func(*options)

// WithArity sets the heap's branching factor. The default is 2; powers of two
// tend to perform best for larger arities.
func WithArity(k int) Option {
	return func(o *options) {
		o.arity = k
	}
}

// FromOrdered asserts that the input slice already satisfies the heap
// property, skipping the O(n) build step. The assertion is trusted and never
// checked: violating it silently yields a corrupt heap.
func FromOrdered() Option {
	return func(o *options) {
		o.ordered = true
	}
}

// WithSwapObserver registers fn to be called with both indices after every
// internal swap, including swaps performed during the initial build. Wrappers
// such as the priority queue use it to keep element positions in sync.
func WithSwapObserver(fn func(i, j int)) Option {
	return func(o *options) {
		o.onSwap = fn
	}
}

// defaultOptions returns the default construction configuration.
func defaultOptions() options {
	return options{
		arity:   2,
		ordered: false,
		onSwap:  nil,
	}
}
