package slist

import (
	"golang.org/x/exp/constraints"

	"github.com/polyds/collections/compare"
)

// Sort sorts the list in ascending natural order. The sort is stable and in
// place.
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(compare.Less[T])
}

// SortFunc sorts the list in place using the ordering predicate less, which
// must be a strict weak ordering.
//
// The sort is a stable merge sort over the node chain: O(n log n)
// comparisons, O(log n) stack depth, zero allocation. Without backward
// links the midpoint is found by walking half the known length instead of
// the two-pointer split used by the doubly linked list.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	if l.head == nil {
		return
	}
	l.head, l.tail = sortRange(l.head, l.tail, l.size, less)
}

// sortRange sorts the sub-chain of n nodes bounded inclusively by
// (first, last) and returns the new boundary nodes.
func sortRange[T any](first, last *node[T], n int, less func(a, b T) bool) (head, tail *node[T]) {
	if n == 1 {
		return first, last
	}

	var m1 *node[T]
	m2 := first
	for i := 0; i < n/2; i++ {
		m1 = m2
		m2 = m2.next
	}
	m1.next = nil

	leftHead, leftTail := sortRange(first, m1, n/2, less)
	rightHead, rightTail := sortRange(m2, last, n-n/2, less)

	// Merge, taking from the left half on ties to keep the sort stable.
	left, right := leftHead, rightHead
	if less(right.value, left.value) {
		head, tail = right, right
		right = right.next
	} else {
		head, tail = left, left
		left = left.next
	}
	for left != nil && right != nil {
		if less(right.value, left.value) {
			tail.next = right
			right = right.next
		} else {
			tail.next = left
			left = left.next
		}
		tail = tail.next
	}
	if left != nil {
		tail.next = left
		tail = leftTail
	} else {
		tail.next = right
		tail = rightTail
	}
	return head, tail
}
