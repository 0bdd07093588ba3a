// Package compare provides comparison functions and ordering predicates used
// by the container packages.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Less is an ordering predicate for ordered types, usable as the comparator
// of the sorting operations in the container packages.
func Less[T constraints.Ordered](a, b T) bool { return a < b }

// Greater is the ordering predicate producing the reverse of the natural
// order.
func Greater[T constraints.Ordered](a, b T) bool { return a > b }

// Reversed returns a predicate ordering elements in the opposite direction of
// less.
func Reversed[T any](less func(T, T) bool) func(T, T) bool {
	return func(a, b T) bool { return less(b, a) }
}

// FromFunction converts a three-way comparison function into an ordering
// predicate.
func FromFunction[T any](cmp func(T, T) int) func(T, T) bool {
	return func(a, b T) bool { return cmp(a, b) < 0 }
}
