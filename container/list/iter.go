package list

import (
	"github.com/pkg/errors"

	"github.com/polyds/collections/errs"
)

// Iterator is a cyclic, bidirectional cursor over the elements of a list.
//
// An iterator designates either an element of its list, or the list's
// sentinel (past-the-end) position. Iterators have value semantics: Next and
// Prev return a moved cursor and leave the receiver unchanged.
//
// The cursor is cyclic in both directions: advancing from the back element
// reaches the sentinel, advancing from the sentinel wraps around to the
// front element, and symmetrically when moving backward. Moving k steps
// forward then k steps backward returns to the starting position, for every
// position including the sentinel.
//
// An iterator designating an element remains valid until that element is
// erased; other mutations of the list do not invalidate it. Comparing or
// mixing iterators of two different lists is meaningless: Eq reports false
// for them and the list methods taking iterators panic.
type Iterator[T any] struct {
	list *List[T]
	node *node[T]
}

// Begin returns an iterator to the front element of the list, or the
// sentinel position if the list is empty.
func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{list: l, node: l.head} }

// End returns the sentinel (past-the-end) iterator of the list.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{list: l} }

// Valid returns true if the iterator designates an element, false at the
// sentinel position.
func (it Iterator[T]) Valid() bool { return it.node != nil }

// Next returns the iterator moved one position forward. Advancing from the
// sentinel reaches the front element.
func (it Iterator[T]) Next() Iterator[T] {
	if it.node == nil {
		it.node = it.list.head
	} else {
		it.node = it.node.next
	}
	return it
}

// Prev returns the iterator moved one position backward. Receding from the
// sentinel reaches the back element.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.node == nil {
		it.node = it.list.tail
	} else {
		it.node = it.node.prev
	}
	return it
}

// Value returns the element at the iterator position. It fails with
// errs.ErrDereference at the sentinel position.
func (it Iterator[T]) Value() (T, error) {
	if it.node == nil {
		var zero T
		return zero, errors.Wrap(errs.ErrDereference, "list iterator")
	}
	return it.node.value, nil
}

// Ref returns a pointer to the element at the iterator position, allowing
// in-place modification. It fails with errs.ErrDereference at the sentinel
// position.
func (it Iterator[T]) Ref() (*T, error) {
	if it.node == nil {
		return nil, errors.Wrap(errs.ErrDereference, "list iterator")
	}
	return &it.node.value, nil
}

// Set replaces the element at the iterator position. It fails with
// errs.ErrDereference at the sentinel position.
func (it Iterator[T]) Set(value T) error {
	if it.node == nil {
		return errors.Wrap(errs.ErrDereference, "list iterator")
	}
	it.node.value = value
	return nil
}

// Eq returns true if both iterators designate the same element, or both are
// the sentinel position of the same list.
func (it Iterator[T]) Eq(other Iterator[T]) bool {
	if it.node != nil || other.node != nil {
		return it.node == other.node
	}
	return it.list == other.list
}
