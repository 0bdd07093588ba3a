// Package list provides the implementation of a generic doubly linked list.
//
// The list owns a chain of individually allocated nodes linked in both
// directions, which makes it a good fit for workloads doing a lot of
// insertion and removal at arbitrary positions: both are constant time once
// an iterator designates the position, and they never invalidate iterators
// referring to untouched nodes.
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list:
//
//	l := list.List[int]{}
//	l.PushBack(1)
//	l.PushBack(2)
//
//	for it := l.Begin(); it.Valid(); it = it.Next() {
//		...
//	}
//
// Iteration is cyclic: advancing past the last element reaches the sentinel
// position returned by End, and advancing again wraps around to the first
// element. See the Iterator type for details.
package list

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/polyds/collections/errs"
)

// maxLen is the sanity bound on constructed list lengths.
const maxLen = 1 << 48

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// List is a doubly linked list of elements of type T.
//
// The zero-value is a valid empty list. Lists must not be copied by value
// after their first use; share them by pointer.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New constructs a new empty list.
func New[T any]() *List[T] { return new(List[T]) }

// Of constructs a list holding the given values in order.
func Of[T any](values ...T) *List[T] {
	l := new(List[T])
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Repeat constructs a list of n elements, each a copy of value.
//
// The length must be non-negative and below 2^48, otherwise the call fails
// with errs.ErrInvalidArgument.
func Repeat[T any](value T, n int64) (*List[T], error) {
	if n < 0 || n >= maxLen {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "list length %d", n)
	}
	l := new(List[T])
	for i := int64(0); i < n; i++ {
		l.PushBack(value)
	}
	return l, nil
}

// FromFunc constructs a list of length n whose i-th element (front to back)
// is f(i).
func FromFunc[T any](n int, f func(int) T) *List[T] {
	l := new(List[T])
	for i := 0; i < n; i++ {
		l.PushBack(f(i))
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.size }

// Empty returns true if the list holds no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Clone returns a deep copy of the list: new nodes holding copies of the
// values, in the same order.
func (l *List[T]) Clone() *List[T] {
	c := new(List[T])
	for n := l.head; n != nil; n = n.next {
		c.PushBack(n.value)
	}
	return c
}

// PushFront inserts value at the front of the list.
func (l *List[T]) PushFront(value T) {
	n := &node[T]{value: value, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
}

// PushBack inserts value at the back of the list.
func (l *List[T]) PushBack(value T) {
	n := &node[T]{value: value, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PopFront removes the element at the front of the list and returns it.
// It fails with errs.ErrEmptyContainer if the list is empty.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errors.Wrap(errs.ErrEmptyContainer, "pop front")
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	n.next = nil
	l.size--
	return n.value, nil
}

// PopBack removes the element at the back of the list and returns it.
// It fails with errs.ErrEmptyContainer if the list is empty.
func (l *List[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, errors.Wrap(errs.ErrEmptyContainer, "pop back")
	}
	n := l.tail
	l.tail = n.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	n.prev = nil
	l.size--
	return n.value, nil
}

// At returns a pointer to the element at index i, allowing in-place
// modification of the value.
//
// Indexes are accepted in the interval [-n, n) for a list of n elements,
// negative values counting from the back (-1 designates the last element).
// Out of bound indexes fail with errs.ErrOutOfRange.
//
// The element is reached by walking from the nearer of the two list ends.
func (l *List[T]) At(i int64) (*T, error) {
	n64 := int64(l.size)
	if i >= n64 || i < -n64 {
		return nil, errors.Wrapf(errs.ErrOutOfRange, "index %d with length %d", i, l.size)
	}
	j := i
	if j < 0 {
		j += n64
	}
	if j >= n64/2 {
		n := l.tail
		for j++; j < n64; j++ {
			n = n.prev
		}
		return &n.value, nil
	}
	n := l.head
	for ; j > 0; j-- {
		n = n.next
	}
	return &n.value, nil
}

// Get returns the element at index i. It accepts the same indexes and fails
// the same way as At.
func (l *List[T]) Get(i int64) (T, error) {
	p, err := l.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set replaces the element at index i. It accepts the same indexes and fails
// the same way as At.
func (l *List[T]) Set(i int64, value T) error {
	p, err := l.At(i)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Insert inserts value immediately before the position designated by it, and
// returns an iterator to the freshly inserted element. Inserting at the
// sentinel position appends to the back of the list.
//
// The method panics if it is an iterator of a different list.
func (l *List[T]) Insert(it Iterator[T], value T) Iterator[T] {
	l.check(it)
	switch {
	case it.node != nil && it.node == l.head:
		l.PushFront(value)
		return l.Begin()
	case it.node == nil:
		l.PushBack(value)
		return Iterator[T]{list: l, node: l.tail}
	default:
		n := &node[T]{value: value, prev: it.node.prev, next: it.node}
		it.node.prev.next = n
		it.node.prev = n
		l.size++
		return Iterator[T]{list: l, node: n}
	}
}

// Erase removes the element at the position designated by it, and returns an
// iterator to its former successor (the sentinel if the back element was
// removed). Erasing the sentinel position fails with errs.ErrInvalidIterator.
//
// Iterators to other elements of the list remain valid; the iterator to the
// erased element is invalidated.
//
// The method panics if it is an iterator of a different list.
func (l *List[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	l.check(it)
	if it.node == nil {
		return it, errors.Wrap(errs.ErrInvalidIterator, "erase of sentinel position")
	}
	n := it.node
	next := n.next
	if n.prev == nil {
		l.head = next
	} else {
		n.prev.next = next
	}
	if next == nil {
		l.tail = n.prev
	} else {
		next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	l.size--
	return Iterator[T]{list: l, node: next}, nil
}

// Reverse reverses the order of the elements in place, without allocating.
func (l *List[T]) Reverse() {
	l.head, l.tail = l.tail, l.head
	for n := l.head; n != nil; n = n.next {
		n.prev, n.next = n.next, n.prev
	}
}

// Clear removes all elements, resetting the list to empty.
func (l *List[T]) Clear() {
	// Break the links between nodes so that stale iterators cannot keep the
	// whole chain reachable.
	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Concat appends a copy of every element of other to the back of the list,
// in order. The other list is left unchanged.
func (l *List[T]) Concat(other *List[T]) {
	if other == l {
		other = l.Clone()
	}
	for n := other.head; n != nil; n = n.next {
		l.PushBack(n.value)
	}
}

// ConcatMove splices the entire node chain of other onto the back of the
// list in constant time, leaving other empty. Ownership of the nodes
// transfers, so iterators into other now designate positions of l.
func (l *List[T]) ConcatMove(other *List[T]) {
	if other == l || other.head == nil {
		return
	}
	if l.head == nil {
		l.head = other.head
		l.tail = other.tail
		l.size = other.size
	} else {
		other.head.prev = l.tail
		l.tail.next = other.head
		l.tail = other.tail
		l.size += other.size
	}
	other.head = nil
	other.tail = nil
	other.size = 0
}

// Range calls f for each element of the list in traversal order. If f
// returns false, the iteration is stopped.
func (l *List[T]) Range(f func(T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !f(n.value) {
			break
		}
	}
}

// Equal returns true if a and b have the same length and pairwise-equal
// elements in traversal order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for na, nb := a.head, b.head; na != nil; na, nb = na.next, nb.next {
		if !eq(na.value, nb.value) {
			return false
		}
	}
	return true
}

// String renders the list as "DLList[v0,v1,...]" in traversal order.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("DLList[")
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%v", n.value)
	}
	b.WriteByte(']')
	return b.String()
}

func (l *List[T]) check(it Iterator[T]) {
	if it.list != l {
		panic(fmt.Errorf("list: iterator of %p used with list %p", it.list, l))
	}
}
