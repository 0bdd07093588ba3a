// Package fn provides functional-style wrappers around the language
// operators, plus a few fold helpers over slices.
//
// The operator wrappers exist so that operators can be passed where a
// function value is expected, typically as the combining function of Foldl
// and friends:
//
//	sum := fn.Foldl0(fn.Add[int], 0, values)
package fn

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/polyds/collections/errs"
)

// Number is the constraint satisfied by all built-in numeric types.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Add returns a + b.
func Add[T Number | ~string](a, b T) T { return a + b }

// Sub returns a - b.
func Sub[T Number](a, b T) T { return a - b }

// Mul returns a * b.
func Mul[T Number](a, b T) T { return a * b }

// Div returns a / b.
func Div[T Number](a, b T) T { return a / b }

// Mod returns a % b.
func Mod[T constraints.Integer](a, b T) T { return a % b }

// BitAnd returns a & b.
func BitAnd[T constraints.Integer](a, b T) T { return a & b }

// BitOr returns a | b.
func BitOr[T constraints.Integer](a, b T) T { return a | b }

// BitXor returns a ^ b.
func BitXor[T constraints.Integer](a, b T) T { return a ^ b }

// BitNot returns ^a.
func BitNot[T constraints.Integer](a T) T { return ^a }

// Shl returns a << b.
func Shl[T constraints.Integer](a, b T) T { return a << b }

// Shr returns a >> b.
func Shr[T constraints.Integer](a, b T) T { return a >> b }

// And returns a && b.
func And(a, b bool) bool { return a && b }

// Or returns a || b.
func Or(a, b bool) bool { return a || b }

// Not returns !a.
func Not(a bool) bool { return !a }

// Neg returns -a.
func Neg[T constraints.Signed | constraints.Float | constraints.Complex](a T) T { return -a }

// Lt returns a < b.
func Lt[T constraints.Ordered](a, b T) bool { return a < b }

// Gt returns a > b.
func Gt[T constraints.Ordered](a, b T) bool { return a > b }

// Le returns a <= b.
func Le[T constraints.Ordered](a, b T) bool { return a <= b }

// Ge returns a >= b.
func Ge[T constraints.Ordered](a, b T) bool { return a >= b }

// Eq returns a == b.
func Eq[T comparable](a, b T) bool { return a == b }

// Ne returns a != b.
func Ne[T comparable](a, b T) bool { return a != b }

// Map applies f to every element of items and returns the results in
// order.
func Map[T, U any](f func(T) U, items []T) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = f(item)
	}
	return out
}

// Filter returns the elements of items for which cond is true, in order.
func Filter[T any](cond func(T) bool, items []T) []T {
	var out []T
	for _, item := range items {
		if cond(item) {
			out = append(out, item)
		}
	}
	return out
}

// Foldl0 is the left-associative fold with an initial element:
// f(...f(f(init, items[0]), items[1])..., items[n-1]).
func Foldl0[T, U any](f func(U, T) U, init U, items []T) U {
	ret := init
	for _, item := range items {
		ret = f(ret, item)
	}
	return ret
}

// Foldl1 is the left-associative fold over a non-empty slice, using the
// first element as the initial value. It fails with errs.ErrEmptyContainer
// on an empty slice.
func Foldl1[T any](f func(T, T) T, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, errors.Wrap(errs.ErrEmptyContainer, "foldl1")
	}
	ret := items[0]
	for _, item := range items[1:] {
		ret = f(ret, item)
	}
	return ret, nil
}

// Foldr0 is the right-associative fold with an initial element:
// f(items[0], f(items[1], ...f(items[n-1], init)...)).
func Foldr0[T, U any](f func(T, U) U, init U, items []T) U {
	ret := init
	for i := len(items) - 1; i >= 0; i-- {
		ret = f(items[i], ret)
	}
	return ret
}

// Foldr1 is the right-associative fold over a non-empty slice, using the
// last element as the initial value. It fails with errs.ErrEmptyContainer
// on an empty slice.
func Foldr1[T any](f func(T, T) T, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, errors.Wrap(errs.ErrEmptyContainer, "foldr1")
	}
	ret := items[len(items)-1]
	for i := len(items) - 2; i >= 0; i-- {
		ret = f(items[i], ret)
	}
	return ret, nil
}
