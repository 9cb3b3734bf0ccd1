// Package functional provides the higher-order helpers the containers in this
// module are assembled with: an element-wise transform and lock-step iteration
// over parallel slices.
package functional

import (
	"iter"
)

// Fmap applies f to each element of in and returns the slice of results,
// preserving order and length. The input slice is never mutated.
func Fmap[T, U any](f func(T) U, in []T) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

// Zip iterates over two slices in lock-step, yielding one pair per step and
// stopping at the end of the shorter slice. The surplus of the longer slice is
// silently ignored.
func Zip[A, B any](as []A, bs []B) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		n := min(len(as), len(bs))
		for i := 0; i < n; i++ {
			if !yield(as[i], bs[i]) {
				return
			}
		}
	}
}

// Triple holds one step of a three-way lock-step iteration.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Zip3 iterates over three slices in lock-step, stopping at the shortest.
func Zip3[A, B, C any](as []A, bs []B, cs []C) iter.Seq[Triple[A, B, C]] {
	return func(yield func(Triple[A, B, C]) bool) {
		n := min(len(as), len(bs), len(cs))
		for i := 0; i < n; i++ {
			if !yield(Triple[A, B, C]{as[i], bs[i], cs[i]}) {
				return
			}
		}
	}
}
