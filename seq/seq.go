// Package seq provides small slice utilities used to seed and reshape the
// containers in this module: sequential ranges, end trimming, and in-place
// rotation to a value.
package seq

import (
	"golang.org/x/exp/constraints"
)

// Range returns the sequence [start, start+1, ..., start+n-1].
// An n of zero yields an empty, non-nil slice.
func Range[T constraints.Integer](n int, start T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = start + T(i)
	}
	return out
}

// RangeN returns the sequence [0, 1, ..., n-1].
func RangeN[T constraints.Integer](n int) []T {
	return Range(n, T(0))
}

// Shrink removes the last n elements of s and returns the shortened slice.
// It never reallocates. Shrinking by more than len(s) empties the slice.
func Shrink[T any](s []T, n int) []T {
	if n >= len(s) {
		return s[:0]
	}
	return s[:len(s)-n]
}

// ShiftToValue rotates s in place so that the first occurrence of v becomes
// the first element, preserving the cyclic order of the rest. When v is not
// present, s is left untouched.
func ShiftToValue[T comparable](s []T, v T) {
	pos := -1
	for i, x := range s {
		if x == v {
			pos = i
			break
		}
	}
	if pos <= 0 {
		return
	}

	rotate(s, pos)
}

// rotate moves s[pos:] to the front of s, keeping relative order.
func rotate[T any](s []T, pos int) {
	reverse(s[:pos])
	reverse(s[pos:])
	reverse(s)
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
