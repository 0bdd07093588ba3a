// Package array provides the implementation of a generic fixed-length
// array.
//
// The length is set at construction and never changes: there is no push,
// pop or resize. For anything that grows or shrinks, use package vector
// instead; this type exists for data whose size is known up front, such as
// an input of known length.
package array

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/polyds/collections/errs"
)

// maxLen is the sanity bound on constructed lengths.
const maxLen = 1 << 48

// Array is a fixed-length array of elements of type T. The elements are
// mutable, the length is not.
//
// The zero-value is a valid array of length zero.
type Array[T any] struct {
	data []T
}

// Of constructs an array holding the given values in order.
func Of[T any](values ...T) *Array[T] {
	a := &Array[T]{data: make([]T, len(values))}
	copy(a.data, values)
	return a
}

// Repeat constructs an array of n elements, each a copy of value.
//
// The length must be non-negative and below 2^48, otherwise the call fails
// with errs.ErrInvalidArgument.
func Repeat[T any](value T, n int64) (*Array[T], error) {
	if n < 0 || n >= maxLen {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "array length %d", n)
	}
	a := &Array[T]{data: make([]T, n)}
	for i := range a.data {
		a.data[i] = value
	}
	return a, nil
}

// FromFunc constructs an array of length n whose i-th element is f(i).
func FromFunc[T any](n int, f func(int) T) *Array[T] {
	a := &Array[T]{data: make([]T, n)}
	for i := range a.data {
		a.data[i] = f(i)
	}
	return a
}

// Len returns the length of the array.
func (a *Array[T]) Len() int { return len(a.data) }

// Empty returns true if the array has length zero.
func (a *Array[T]) Empty() bool { return len(a.data) == 0 }

// Values returns the elements as a slice sharing the array's storage.
func (a *Array[T]) Values() []T { return a.data }

// Clone returns a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] { return Of(a.data...) }

// At returns a pointer to the element at index i, allowing in-place
// modification.
//
// Indexes are accepted in the interval [-n, n), negative values counting
// from the back. Out of bound indexes fail with errs.ErrOutOfRange.
func (a *Array[T]) At(i int64) (*T, error) {
	n64 := int64(len(a.data))
	if i >= n64 || i < -n64 {
		return nil, errors.Wrapf(errs.ErrOutOfRange, "index %d with length %d", i, len(a.data))
	}
	if i < 0 {
		i += n64
	}
	return &a.data[i], nil
}

// Get returns the element at index i. It accepts the same indexes and
// fails the same way as At.
func (a *Array[T]) Get(i int64) (T, error) {
	p, err := a.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set replaces the element at index i. It accepts the same indexes and
// fails the same way as At.
func (a *Array[T]) Set(i int64, value T) error {
	p, err := a.At(i)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Reverse reverses the order of the elements in place.
func (a *Array[T]) Reverse() {
	for i, j := 0, len(a.data)-1; i < j; i, j = i+1, j-1 {
		a.data[i], a.data[j] = a.data[j], a.data[i]
	}
}

// Concat returns a new array holding the elements of a followed by the
// elements of b.
func Concat[T any](a, b *Array[T]) *Array[T] {
	c := &Array[T]{data: make([]T, len(a.data)+len(b.data))}
	copy(c.data, a.data)
	copy(c.data[len(a.data):], b.data)
	return c
}

// Times returns a new array holding n consecutive copies of the array's
// elements. A negative count fails with errs.ErrInvalidArgument.
func (a *Array[T]) Times(n int64) (*Array[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "repeat count %d", n)
	}
	c := &Array[T]{data: make([]T, int64(len(a.data))*n)}
	for i := int64(0); i < n; i++ {
		copy(c.data[i*int64(len(a.data)):], a.data)
	}
	return c, nil
}

// Slice returns a new array holding the elements at indexes beg, beg+step,
// ... in the interval [beg, end). Negative bounds count from the back
// before clamping to the valid range. The step must be positive, otherwise
// the call fails with errs.ErrInvalidArgument.
func (a *Array[T]) Slice(beg, end int64, step int64) (*Array[T], error) {
	if step < 1 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "slice step %d", step)
	}
	n64 := int64(len(a.data))
	if beg < 0 {
		beg += n64
	}
	if end < 0 {
		end += n64
	}
	if beg < 0 {
		beg = 0
	}
	if end > n64 {
		end = n64
	}
	c := &Array[T]{}
	if end > beg {
		c.data = make([]T, (end-beg+step-1)/step)
		for i := range c.data {
			c.data[i] = a.data[beg+int64(i)*step]
		}
	}
	return c, nil
}

// SliceFirst returns a new array holding the first n elements, or all of
// them if n exceeds the length. A negative count fails with
// errs.ErrInvalidArgument.
func (a *Array[T]) SliceFirst(n int64) (*Array[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "slice count %d", n)
	}
	return a.Slice(0, n, 1)
}

// SliceLast returns a new array holding the last n elements, or all of
// them if n exceeds the length. A negative count fails with
// errs.ErrInvalidArgument.
func (a *Array[T]) SliceLast(n int64) (*Array[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "slice count %d", n)
	}
	beg := int64(len(a.data)) - n
	if beg < 0 {
		beg = 0
	}
	return a.Slice(beg, int64(len(a.data)), 1)
}

// SortFunc sorts the array in place using the ordering predicate less. The
// sort is not guaranteed to be stable; use StableSortFunc when equal
// elements must retain their order.
func (a *Array[T]) SortFunc(less func(x, y T) bool) {
	sort.Slice(a.data, func(i, j int) bool { return less(a.data[i], a.data[j]) })
}

// StableSortFunc sorts the array in place using the ordering predicate
// less, keeping equal elements in their original order.
func (a *Array[T]) StableSortFunc(less func(x, y T) bool) {
	sort.SliceStable(a.data, func(i, j int) bool { return less(a.data[i], a.data[j]) })
}

// Range calls f for each element of the array in order. If f returns
// false, the iteration is stopped.
func (a *Array[T]) Range(f func(T) bool) {
	for _, value := range a.data {
		if !f(value) {
			break
		}
	}
}

// Equal returns true if a and b have the same length and pairwise-equal
// elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Array[T], eq func(T, T) bool) bool {
	if len(a.data) != len(b.data) {
		return false
	}
	for i, value := range a.data {
		if !eq(value, b.data[i]) {
			return false
		}
	}
	return true
}

// String renders the array as "FixArray[v0,v1,...]".
func (a *Array[T]) String() string {
	var b strings.Builder
	b.WriteString("FixArray[")
	for i, value := range a.data {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%v", value)
	}
	b.WriteByte(']')
	return b.String()
}
