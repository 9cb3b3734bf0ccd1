package priority

// options defines the construction-time configuration of a Queue.
type options struct {
	arity   int
	ordered bool
}

// Option is a function that configures queue construction.
type Option func(*options)

// WithArity sets the branching factor of the backing heap. The default is 2.
func WithArity(k int) Option {
	return func(o *options) {
		o.arity = k
	}
}

// FromOrdered asserts that the values slice, read in key order, already
// satisfies the heap property, skipping the O(n) build step. The assertion is
// trusted and never checked.
func FromOrdered() Option {
	return func(o *options) {
		o.ordered = true
	}
}

// defaultOptions returns the default construction configuration.
func defaultOptions() options {
	return options{
		arity:   2,
		ordered: false,
	}
}
