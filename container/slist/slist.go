// Package slist provides the implementation of a generic singly linked list.
//
// Compared to the doubly linked list of package list, nodes only carry a
// link to their successor, halving the per-node overhead. The trade-off is
// that iteration is forward-only and not cyclic, and removal at the back is
// not supported (it would require a full traversal to find the predecessor
// of the tail).
//
// The iterator carries the predecessor of the node it designates, which is
// what allows Insert and Erase to relink the chain in constant time.
package slist

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
	next  *node[T]
}

// List is a singly linked list of elements of type T.
//
// The zero-value is a valid empty list. Lists must not be copied by value
// after their first use; share them by pointer.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// Iterator is a forward-only cursor over the elements of a list.
//
// An iterator designates either an element or the list's sentinel
// (past-the-end) position. Unlike the doubly linked list iterator it is not
// cyclic: advancing from the sentinel is an error. An iterator is
// invalidated by Insert or Erase at its position; the iterators returned by
// those methods must be used instead.
type Iterator[T any] struct {
	list *List[T]
	prev *node[T]
	node *node[T]
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

// Clone returns a deep copy of the list.
func (l *List[T]) Clone() *List[T] {
	c := new(List[T])
	for n := l.head; n != nil; n = n.next {
		c.PushBack(n.value)
	}
	return c
}

// Begin returns an iterator to the front element of the list, or the
// sentinel position if the list is empty.
func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{list: l, node: l.head} }

// End returns the sentinel (past-the-end) iterator of the list.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{list: l, prev: l.tail} }

// Valid returns true if the iterator designates an element.
func (it Iterator[T]) Valid() bool { return it.node != nil }

// Next returns the iterator moved one position forward. Advancing from the
// sentinel position fails with errs.ErrInvalidIterator.
func (it Iterator[T]) Next() (Iterator[T], error) {
	if it.node == nil {
		return it, errors.Wrap(errs.ErrInvalidIterator, "advance past the sentinel")
	}
	it.prev = it.node
	it.node = it.node.next
	return it, nil
}

// Value returns the element at the iterator position. It fails with
// errs.ErrDereference at the sentinel position.
func (it Iterator[T]) Value() (T, error) {
	if it.node == nil {
		var zero T
		return zero, errors.Wrap(errs.ErrDereference, "slist iterator")
	}
	return it.node.value, nil
}

// Ref returns a pointer to the element at the iterator position. It fails
// with errs.ErrDereference at the sentinel position.
func (it Iterator[T]) Ref() (*T, error) {
	if it.node == nil {
		return nil, errors.Wrap(errs.ErrDereference, "slist iterator")
	}
	return &it.node.value, nil
}

// Eq returns true if both iterators designate the same element, or both are
// the sentinel position of the same list.
func (it Iterator[T]) Eq(other Iterator[T]) bool {
	if it.node != nil || other.node != nil {
		return it.node == other.node
	}
	return it.list == other.list
}

// PushFront inserts value at the front of the list.
func (l *List[T]) PushFront(value T) {
	n := &node[T]{value: value, next: l.head}
	if l.head == nil {
		l.tail = n
	}
	l.head = n
	l.size++
}

// PushBack inserts value at the back of the list.
func (l *List[T]) PushBack(value T) {
	n := &node[T]{value: value}
	if l.head == nil {
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
	}
	n.next = nil
	l.size--
	return n.value, nil
}

// Get returns the element at index i.
//
// Indexes are accepted in the interval [-n, n), negative values counting
// from the back. Out of bound indexes fail with errs.ErrOutOfRange. The
// element is always reached by walking from the head, which makes indexed
// access a slow operation on this container.
func (l *List[T]) Get(i int64) (T, error) {
	n64 := int64(l.size)
	if i >= n64 || i < -n64 {
		var zero T
		return zero, errors.Wrapf(errs.ErrOutOfRange, "index %d with length %d", i, l.size)
	}
	j := i
	if j < 0 {
		j += n64
	}
	n := l.head
	for ; j > 0; j-- {
		n = n.next
	}
	return n.value, nil
}

// Insert inserts value immediately before the position designated by it,
// and returns an iterator to the freshly inserted element. Inserting at the
// sentinel position appends to the back. The iterator passed in is
// invalidated.
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
		return Iterator[T]{list: l, prev: it.prev, node: l.tail}
	default:
		n := &node[T]{value: value, next: it.node}
		it.prev.next = n
		l.size++
		return Iterator[T]{list: l, prev: it.prev, node: n}
	}
}

// Erase removes the element at the position designated by it, and returns
// an iterator to its former successor. Erasing the sentinel position fails
// with errs.ErrInvalidIterator. The iterator passed in is invalidated.
//
// The method panics if it is an iterator of a different list.
func (l *List[T]) Erase(it Iterator[T]) (Iterator[T], error) {
	l.check(it)
	if it.node == nil {
		return it, errors.Wrap(errs.ErrInvalidIterator, "erase of sentinel position")
	}
	if it.node == l.head {
		if _, err := l.PopFront(); err != nil {
			return it, err
		}
		return l.Begin(), nil
	}
	it.prev.next = it.node.next
	if it.node == l.tail {
		l.tail = it.prev
	}
	it.node.next = nil
	l.size--
	return Iterator[T]{list: l, prev: it.prev, node: it.prev.next}, nil
}

// Reverse reverses the order of the elements in place, without allocating.
func (l *List[T]) Reverse() {
	if l.head == nil {
		return
	}
	newTail := l.head
	var newHead *node[T]
	for n := l.head; n != nil; {
		next := n.next
		n.next = newHead
		newHead = n
		n = next
	}
	l.head = newHead
	l.tail = newTail
}

// Clear removes all elements, resetting the list to empty.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
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
// list in constant time, leaving other empty.
func (l *List[T]) ConcatMove(other *List[T]) {
	if other == l || other.head == nil {
		return
	}
	if l.head == nil {
		l.head = other.head
		l.tail = other.tail
		l.size = other.size
	} else {
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

// String renders the list as "SLList[v0,v1,...]" in traversal order.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("SLList[")
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
		panic(fmt.Errorf("slist: iterator of %p used with list %p", it.list, l))
	}
}
