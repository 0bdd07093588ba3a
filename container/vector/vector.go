// Package vector provides the implementation of a generic growable array.
//
// Elements are stored in a single contiguous block of memory, giving fast
// indexed access and fast amortized append. The growth policy is pluggable:
// when the backing storage is full, the next capacity is computed by a
// Resizer function, by default an approximate 9/8 geometric growth, which
// trades a little extra copying for a tighter memory footprint than the
// usual doubling.
package vector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/polyds/collections/errs"
)

// maxLen is the sanity bound on constructed and resized lengths.
const maxLen = 1 << 48

// Resizer computes the capacity to grow to, given the current capacity.
// The returned value must be strictly greater than the argument.
type Resizer func(int) int

// GrowthRatio returns a Resizer growing capacities by an approximate
// num/den geometric ratio. num must be at least den, and den positive.
func GrowthRatio(num, den int) Resizer {
	if num < den || den <= 0 {
		panic(fmt.Errorf("vector: invalid growth ratio %d/%d", num, den))
	}
	return func(n int) int { return ((1 + n) * num) / den }
}

// Vector is a growable array of elements of type T.
//
// The zero-value is a valid empty vector with no allocated storage, using
// the default growth policy.
type Vector[T any] struct {
	buf  []T // len(buf) is the allocated capacity
	size int
	grow Resizer
}

// New constructs a new empty vector.
func New[T any]() *Vector[T] { return new(Vector[T]) }

// NewWithResizer constructs a new empty vector using r as its growth
// policy.
func NewWithResizer[T any](r Resizer) *Vector[T] {
	return &Vector[T]{grow: r}
}

// Of constructs a vector holding the given values in order, with exactly
// fitting storage.
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{buf: make([]T, len(values)), size: len(values)}
	copy(v.buf, values)
	return v
}

// Repeat constructs a vector of n elements, each a copy of value, with
// exactly fitting storage.
//
// The length must be non-negative and below 2^48, otherwise the call fails
// with errs.ErrInvalidArgument.
func Repeat[T any](value T, n int64) (*Vector[T], error) {
	if n < 0 || n >= maxLen {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "vector length %d", n)
	}
	v := &Vector[T]{buf: make([]T, n), size: int(n)}
	for i := range v.buf {
		v.buf[i] = value
	}
	return v, nil
}

// FromFunc constructs a vector of length n whose i-th element is f(i).
func FromFunc[T any](n int, f func(int) T) *Vector[T] {
	v := &Vector[T]{buf: make([]T, n), size: n}
	for i := range v.buf {
		v.buf[i] = f(i)
	}
	return v
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the allocated capacity.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty returns true if the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Full returns true if all the allocated storage is in use.
func (v *Vector[T]) Full() bool { return v.size == len(v.buf) }

// Values returns the live elements as a slice sharing the vector's
// storage. The slice is invalidated by any operation that reallocates.
func (v *Vector[T]) Values() []T { return v.buf[:v.size] }

// Clone returns a deep copy of the vector with exactly fitting storage.
func (v *Vector[T]) Clone() *Vector[T] {
	return Of(v.Values()...)
}

// At returns a pointer to the element at index i, allowing in-place
// modification.
//
// Indexes are accepted in the interval [-n, n), negative values counting
// from the back. Out of bound indexes fail with errs.ErrOutOfRange.
func (v *Vector[T]) At(i int64) (*T, error) {
	n64 := int64(v.size)
	if i >= n64 || i < -n64 {
		return nil, errors.Wrapf(errs.ErrOutOfRange, "index %d with length %d", i, v.size)
	}
	if i < 0 {
		i += n64
	}
	return &v.buf[i], nil
}

// Get returns the element at index i. It accepts the same indexes and
// fails the same way as At.
func (v *Vector[T]) Get(i int64) (T, error) {
	p, err := v.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set replaces the element at index i. It accepts the same indexes and
// fails the same way as At.
func (v *Vector[T]) Set(i int64, value T) error {
	p, err := v.At(i)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Push appends value at the back of the vector, growing the storage if
// necessary.
func (v *Vector[T]) Push(value T) {
	if v.size == len(v.buf) {
		grow := v.grow
		if grow == nil {
			grow = GrowthRatio(9, 8)
		}
		v.realloc(grow(len(v.buf)))
	}
	v.buf[v.size] = value
	v.size++
}

// Pop removes the element at the back of the vector and returns it. It
// fails with errs.ErrEmptyContainer if the vector is empty.
func (v *Vector[T]) Pop() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, errors.Wrap(errs.ErrEmptyContainer, "pop")
	}
	v.size--
	value := v.buf[v.size]
	var zero T
	v.buf[v.size] = zero
	return value, nil
}

// Append appends the given values at the back of the vector.
func (v *Vector[T]) Append(values ...T) {
	for _, value := range values {
		v.Push(value)
	}
}

// AppendVector appends a copy of every element of other at the back of the
// vector.
func (v *Vector[T]) AppendVector(other *Vector[T]) {
	v.Append(other.Values()...)
}

// Clear removes all elements and releases the storage.
func (v *Vector[T]) Clear() {
	v.buf = nil
	v.size = 0
}

// Shrink reallocates the storage to exactly fit the current length.
func (v *Vector[T]) Shrink() {
	if v.size != len(v.buf) {
		v.realloc(v.size)
	}
}

// Realloc changes the allocated capacity to n. The length decreases if n
// is smaller than it. A negative capacity fails with
// errs.ErrInvalidArgument.
func (v *Vector[T]) Realloc(n int64) error {
	if n < 0 || n >= maxLen {
		return errors.Wrapf(errs.ErrInvalidArgument, "vector capacity %d", n)
	}
	v.realloc(int(n))
	return nil
}

// Resize changes the length to n, filling new positions with fill. The
// storage is reallocated only when n exceeds the capacity. A negative
// length fails with errs.ErrInvalidArgument.
func (v *Vector[T]) Resize(n int64, fill T) error {
	if n < 0 || n >= maxLen {
		return errors.Wrapf(errs.ErrInvalidArgument, "vector length %d", n)
	}
	if int(n) < v.size {
		var zero T
		for i := int(n); i < v.size; i++ {
			v.buf[i] = zero
		}
	} else {
		if int(n) > len(v.buf) {
			v.realloc(int(n))
		}
		for i := v.size; i < int(n); i++ {
			v.buf[i] = fill
		}
	}
	v.size = int(n)
	return nil
}

func (v *Vector[T]) realloc(capacity int) {
	if capacity < v.size {
		v.size = capacity
	}
	buf := make([]T, capacity)
	copy(buf, v.buf[:v.size])
	v.buf = buf
}

// Reverse reverses the order of the elements in place.
func (v *Vector[T]) Reverse() {
	data := v.Values()
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}

// Concat returns a new vector holding the elements of a followed by the
// elements of b, with exactly fitting storage.
func Concat[T any](a, b *Vector[T]) *Vector[T] {
	c := &Vector[T]{buf: make([]T, a.size+b.size), size: a.size + b.size}
	copy(c.buf, a.Values())
	copy(c.buf[a.size:], b.Values())
	return c
}

// Times returns a new vector holding n consecutive copies of the vector's
// elements. A negative count fails with errs.ErrInvalidArgument.
func (v *Vector[T]) Times(n int64) (*Vector[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "repeat count %d", n)
	}
	c := &Vector[T]{buf: make([]T, int64(v.size)*n), size: int(int64(v.size) * n)}
	for i := int64(0); i < n; i++ {
		copy(c.buf[i*int64(v.size):], v.Values())
	}
	return c, nil
}

// Slice returns a new vector holding the elements at indexes beg, beg+step,
// ... in the interval [beg, end). Negative bounds count from the back
// before clamping to the valid range. The step must be positive, otherwise
// the call fails with errs.ErrInvalidArgument.
func (v *Vector[T]) Slice(beg, end int64, step int64) (*Vector[T], error) {
	if step < 1 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "slice step %d", step)
	}
	n64 := int64(v.size)
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
	c := New[T]()
	if end > beg {
		c.buf = make([]T, (end-beg+step-1)/step)
		c.size = len(c.buf)
		for i := range c.buf {
			c.buf[i] = v.buf[beg+int64(i)*step]
		}
	}
	return c, nil
}

// SliceFirst returns a new vector holding the first n elements, or all of
// them if n exceeds the length. A negative count fails with
// errs.ErrInvalidArgument.
func (v *Vector[T]) SliceFirst(n int64) (*Vector[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "slice count %d", n)
	}
	return v.Slice(0, n, 1)
}

// SliceLast returns a new vector holding the last n elements, or all of
// them if n exceeds the length. A negative count fails with
// errs.ErrInvalidArgument.
func (v *Vector[T]) SliceLast(n int64) (*Vector[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "slice count %d", n)
	}
	beg := int64(v.size) - n
	if beg < 0 {
		beg = 0
	}
	return v.Slice(beg, int64(v.size), 1)
}

// SortFunc sorts the vector in place using the ordering predicate less.
// The sort is not guaranteed to be stable; use StableSortFunc when equal
// elements must retain their order.
func (v *Vector[T]) SortFunc(less func(a, b T) bool) {
	data := v.Values()
	sort.Slice(data, func(i, j int) bool { return less(data[i], data[j]) })
}

// StableSortFunc sorts the vector in place using the ordering predicate
// less, keeping equal elements in their original order.
func (v *Vector[T]) StableSortFunc(less func(a, b T) bool) {
	data := v.Values()
	sort.SliceStable(data, func(i, j int) bool { return less(data[i], data[j]) })
}

// Range calls f for each element of the vector in order. If f returns
// false, the iteration is stopped.
func (v *Vector[T]) Range(f func(T) bool) {
	for _, value := range v.Values() {
		if !f(value) {
			break
		}
	}
}

// Equal returns true if a and b have the same length and pairwise-equal
// elements.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	bv := b.Values()
	for i, value := range a.Values() {
		if !eq(value, bv[i]) {
			return false
		}
	}
	return true
}

// String renders the vector as "DynArray[v0,v1,...]".
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString("DynArray[")
	for i, value := range v.Values() {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%v", value)
	}
	b.WriteByte(']')
	return b.String()
}
