package tree

import (
	"github.com/pkg/errors"

	"github.com/polyds/collections/errs"
)

// Iterator is a cyclic, bidirectional cursor over the elements of a set, in
// the order defined by the set's comparison function.
//
// An iterator designates either an element or the set's sentinel
// (past-the-end) position. Advancing from the maximum element reaches the
// sentinel and advancing from the sentinel wraps around to the minimum;
// moving backward mirrors this exactly. Iterators have value semantics:
// Next and Prev return a moved cursor.
//
// An iterator remains valid until the element it designates is removed.
// Comparing iterators of two different sets is meaningless: Eq reports
// false for them.
type Iterator[E any] struct {
	set  *Set[E]
	node *node[E]
}

// Begin returns an iterator to the minimum element of the set, or the
// sentinel position if the set is empty.
func (s *Set[E]) Begin() Iterator[E] { return s.End().Next() }

// End returns the sentinel (past-the-end) iterator of the set.
func (s *Set[E]) End() Iterator[E] { return Iterator[E]{set: s} }

// Valid returns true if the iterator designates an element.
func (it Iterator[E]) Valid() bool { return it.node != nil }

// Next returns the iterator moved one position forward in comparison order.
// Advancing from the sentinel reaches the minimum element.
func (it Iterator[E]) Next() Iterator[E] {
	n := it.node
	switch {
	case n == nil:
		n = it.set.root
		if n != nil {
			for n.left != nil {
				n = n.left
			}
		}
	case n.right != nil:
		n = n.right
		for n.left != nil {
			n = n.left
		}
	default:
		for n.parent != nil && n.parent.right == n {
			n = n.parent
		}
		n = n.parent
	}
	it.node = n
	return it
}

// Prev returns the iterator moved one position backward in comparison
// order. Receding from the sentinel reaches the maximum element.
func (it Iterator[E]) Prev() Iterator[E] {
	n := it.node
	switch {
	case n == nil:
		n = it.set.root
		if n != nil {
			for n.right != nil {
				n = n.right
			}
		}
	case n.left != nil:
		n = n.left
		for n.right != nil {
			n = n.right
		}
	default:
		for n.parent != nil && n.parent.left == n {
			n = n.parent
		}
		n = n.parent
	}
	it.node = n
	return it
}

// Value returns the element at the iterator position. It fails with
// errs.ErrDereference at the sentinel position.
func (it Iterator[E]) Value() (E, error) {
	if it.node == nil {
		var zero E
		return zero, errors.Wrap(errs.ErrDereference, "tree iterator")
	}
	return it.node.value, nil
}

// Eq returns true if both iterators designate the same element, or both are
// the sentinel position of the same set.
func (it Iterator[E]) Eq(other Iterator[E]) bool {
	if it.node != nil || other.node != nil {
		return it.node == other.node
	}
	return it.set == other.set
}
