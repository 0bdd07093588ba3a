// Package tree provides the implementation of a generic binary search tree
// set.
//
// The tree maintains its elements in the order defined by the comparison
// function installed at construction, giving average-case logarithmic
// search, insertion and removal. It is a plain binary search tree: no
// rebalancing is performed on insert or delete, so adversarial insertion
// orders degrade operations to linear time. The Rebalance method rebuilds
// the tree into its most compact shape when the caller decides it is worth
// the O(n) pass.
//
// Nodes carry a link to their parent, which allows ordered iteration
// without auxiliary storage. Iteration is cyclic the same way as in the
// doubly linked list of package list: advancing past the maximum reaches
// the sentinel and advancing again wraps around to the minimum.
package tree

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/polyds/collections/compare"
	"github.com/polyds/collections/errs"
)

type node[E any] struct {
	value  E
	parent *node[E]
	left   *node[E]
	right  *node[E]
}

// Set is a binary search tree set of elements of type E, ordered by the
// comparison function installed with New or Init.
type Set[E any] struct {
	cmp  func(E, E) int
	root *node[E]
	size int
}

// New constructs a new set using the comparison function passed as argument
// to order the elements.
func New[E any](cmp func(E, E) int) *Set[E] {
	s := new(Set[E])
	s.Init(cmp)
	return s
}

// NewOrdered constructs a new set of an ordered type, using the natural
// order of the type.
func NewOrdered[E constraints.Ordered]() *Set[E] {
	return New(compare.Function[E])
}

// Of constructs a set of an ordered type holding the given values.
// Duplicates are dropped.
func Of[E constraints.Ordered](values ...E) *Set[E] {
	s := NewOrdered[E]()
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// Init initializes the set with the given comparison function to order the
// elements, discarding any previous content.
func (s *Set[E]) Init(cmp func(E, E) int) {
	s.cmp = cmp
	s.root = nil
	s.size = 0
}

// Len returns the number of elements in the set.
func (s *Set[E]) Len() int { return s.size }

// Empty returns true if the set holds no elements.
func (s *Set[E]) Empty() bool { return s.size == 0 }

// Clear removes all elements. The comparison function is retained.
func (s *Set[E]) Clear() {
	s.root = nil
	s.size = 0
}

// Clone returns a deep copy of the set with the same shape and comparison
// function.
func (s *Set[E]) Clone() *Set[E] {
	c := &Set[E]{cmp: s.cmp, size: s.size}
	c.root = cloneTree(s.root, nil)
	return c
}

func cloneTree[E any](n, parent *node[E]) *node[E] {
	if n == nil {
		return nil
	}
	c := &node[E]{value: n.value, parent: parent}
	c.left = cloneTree(n.left, c)
	c.right = cloneTree(n.right, c)
	return c
}

// Insert inserts value in the set. It returns an iterator to the element
// holding the value (freshly inserted or already present), and true if the
// value was not already in the set.
//
// The set must have been initialized by a call to New, NewOrdered, Of or
// Init, otherwise Insert panics.
func (s *Set[E]) Insert(value E) (Iterator[E], bool) {
	if s.cmp == nil {
		panic("tree: Insert called on a set with no comparison function")
	}
	if s.root == nil {
		s.root = &node[E]{value: value}
		s.size++
		return Iterator[E]{set: s, node: s.root}, true
	}
	n := s.root
	for {
		c := s.cmp(value, n.value)
		switch {
		case c < 0:
			if n.left == nil {
				n.left = &node[E]{value: value, parent: n}
				s.size++
				return Iterator[E]{set: s, node: n.left}, true
			}
			n = n.left
		case c > 0:
			if n.right == nil {
				n.right = &node[E]{value: value, parent: n}
				s.size++
				return Iterator[E]{set: s, node: n.right}, true
			}
			n = n.right
		default:
			return Iterator[E]{set: s, node: n}, false
		}
	}
}

// Find returns an iterator to the element equal to value, or the sentinel
// iterator if the set does not contain it.
func (s *Set[E]) Find(value E) Iterator[E] {
	n := s.root
	for n != nil {
		c := s.cmp(value, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return Iterator[E]{set: s, node: n}
		}
	}
	return s.End()
}

// Contains returns true if the set contains value.
func (s *Set[E]) Contains(value E) bool { return s.Find(value).Valid() }

// Delete removes value from the set. It returns false if the value was not
// present.
func (s *Set[E]) Delete(value E) bool {
	it := s.Find(value)
	if !it.Valid() {
		return false
	}
	s.unlink(it.node)
	return true
}

// EraseAt removes the element at the iterator position and returns an
// iterator to the next element in order (the sentinel if the maximum was
// removed). Erasing the sentinel position fails with errs.ErrInvalidIterator.
func (s *Set[E]) EraseAt(it Iterator[E]) (Iterator[E], error) {
	if it.set != s {
		panic(fmt.Errorf("tree: iterator of %p used with set %p", it.set, s))
	}
	if it.node == nil {
		return it, errors.Wrap(errs.ErrInvalidIterator, "erase of sentinel position")
	}
	next := it.Next()
	s.unlink(it.node)
	return next, nil
}

// unlink removes n from the tree, relinking around it. A node with two
// children is replaced by its in-order predecessor, the maximum of its left
// subtree.
func (s *Set[E]) unlink(n *node[E]) {
	p := n.parent
	switch {
	case n.left == nil:
		if n.right != nil {
			n.right.parent = p
		}
		s.replaceChild(p, n, n.right)
	case n.right == nil:
		n.left.parent = p
		s.replaceChild(p, n, n.left)
	default:
		m := n.left
		for m.right != nil {
			m = m.right
		}
		if m.parent == n {
			n.left = m.left
		} else {
			m.parent.right = m.left
		}
		if m.left != nil {
			m.left.parent = m.parent
		}
		m.parent = p
		m.left = n.left
		m.right = n.right
		if n.left != nil {
			n.left.parent = m
		}
		n.right.parent = m
		s.replaceChild(p, n, m)
	}
	n.parent, n.left, n.right = nil, nil, nil
	s.size--
}

func (s *Set[E]) replaceChild(parent, old, new *node[E]) {
	switch {
	case parent == nil:
		s.root = new
	case parent.left == old:
		parent.left = new
	default:
		parent.right = new
	}
}

// Range calls f for each element in the set, in the order defined by the
// comparison function. If f returns false, the iteration is stopped.
func (s *Set[E]) Range(f func(E) bool) {
	subrange(s.root, f)
}

func subrange[E any](n *node[E], f func(E) bool) bool {
	return n == nil || (subrange(n.left, f) && f(n.value) && subrange(n.right, f))
}

// Rebalance rebuilds the tree into its most compact shape: the elements are
// flattened in order and reinserted midpoint-first. O(n) time and space.
func (s *Set[E]) Rebalance() {
	if s.size == 0 {
		return
	}
	values := make([]E, 0, s.size)
	s.Range(func(v E) bool {
		values = append(values, v)
		return true
	})
	s.root = buildTree(values, nil)
}

func buildTree[E any](values []E, parent *node[E]) *node[E] {
	if len(values) == 0 {
		return nil
	}
	mid := len(values) / 2
	n := &node[E]{value: values[mid], parent: parent}
	n.left = buildTree(values[:mid], n)
	n.right = buildTree(values[mid+1:], n)
	return n
}

// Equal returns true if both sets hold the same elements, compared with a's
// comparison function.
func Equal[E any](a, b *Set[E]) bool {
	if a.size != b.size {
		return false
	}
	ia, ib := a.Begin(), b.Begin()
	for ia.Valid() {
		if a.cmp(ia.node.value, ib.node.value) != 0 {
			return false
		}
		ia, ib = ia.Next(), ib.Next()
	}
	return true
}

// SubsetOf returns true if every element of s is contained in other.
//
// When s is nearly as large as other a single ordered pass over both sets
// is cheaper; when s is much smaller, individual lookups win.
func (s *Set[E]) SubsetOf(other *Set[E]) bool {
	if s.size > other.size {
		return false
	}
	if (s.size < 16 && s.size*s.size >= other.size) || s.size > other.size/16 {
		it, ot := s.Begin(), other.Begin()
		for it.Valid() {
			for ot.Valid() && s.cmp(ot.node.value, it.node.value) < 0 {
				ot = ot.Next()
			}
			if !ot.Valid() || s.cmp(it.node.value, ot.node.value) < 0 {
				return false
			}
			it = it.Next()
		}
		return true
	}
	ok := true
	s.Range(func(v E) bool {
		ok = other.Contains(v)
		return ok
	})
	return ok
}

// ProperSubsetOf returns true if s is a subset of other and strictly
// smaller.
func (s *Set[E]) ProperSubsetOf(other *Set[E]) bool {
	return s.size < other.size && s.SubsetOf(other)
}

// SupersetOf returns true if every element of other is contained in s.
func (s *Set[E]) SupersetOf(other *Set[E]) bool {
	return other.SubsetOf(s)
}

// ProperSupersetOf returns true if s is a superset of other and strictly
// larger.
func (s *Set[E]) ProperSupersetOf(other *Set[E]) bool {
	return other.ProperSubsetOf(s)
}

// String renders the set as "TSet[v0,v1,...]" in comparison order.
func (s *Set[E]) String() string {
	var b strings.Builder
	b.WriteString("TSet[")
	first := true
	s.Range(func(v E) bool {
		if !first {
			b.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
		return true
	})
	b.WriteByte(']')
	return b.String()
}
