package list

import (
	"golang.org/x/exp/constraints"

	"github.com/polyds/collections/compare"
)

// Sort sorts the list in ascending natural order. The sort is stable and in
// place: nodes are relinked, not copied, so no allocation is performed.
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(compare.Less[T])
}

// SortFunc sorts the list in place using the ordering predicate less, which
// must be a strict weak ordering (irreflexive, asymmetric, transitive).
//
// The sort is a stable merge sort over the node chain: O(n log n)
// comparisons, O(log n) stack depth, zero allocation. Elements comparing as
// equal retain their original relative order. Sorting an empty list is a
// no-op. Iterators remain valid and keep designating the same elements, at
// their new positions.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	if l.head == nil {
		return
	}
	l.head, l.tail = sortRange(l.head, l.tail, less)
}

// sortRange sorts the sub-chain bounded inclusively by (first, last) and
// returns the new boundary nodes. The caller must guarantee that last is
// reachable from first and that the chain is detached on both sides
// (first.prev == nil and last.next == nil).
func sortRange[T any](first, last *node[T], less func(a, b T) bool) (head, tail *node[T]) {
	if first == last {
		return first, last
	}

	// Two-pointer split: walk m1 forward and m2 backward until they meet,
	// producing two halves without knowing the length.
	m1, m2 := first, last
	for {
		if m1.next == m2 {
			break
		}
		m1 = m1.next
		if m2.prev == m1 {
			break
		}
		m2 = m2.prev
	}
	m1.next = nil
	m2.prev = nil

	leftHead, leftTail := sortRange(first, m1, less)
	rightHead, rightTail := sortRange(m2, last, less)

	// Merge. Ties take from the left half, which keeps the sort stable since
	// the left half holds the earlier original positions.
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
			right.prev = tail
			tail.next = right
			right = right.next
		} else {
			left.prev = tail
			tail.next = left
			left = left.next
		}
		tail = tail.next
	}

	// One half is exhausted, splice the remainder of the other in O(1).
	if left != nil {
		left.prev = tail
		tail.next = left
		tail = leftTail
	} else {
		right.prev = tail
		tail.next = right
		tail = rightTail
	}
	return head, tail
}
