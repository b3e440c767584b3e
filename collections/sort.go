package collections

import "github.com/duyanh-y4n/Collections-C/comparison"

// Sort sorts the list in place. The sort is a stable bottom-up merge
// sort on the node chain itself: runs of doubling length are stitched
// together by relinking the existing nodes, so no nodes are allocated
// and payload identity is preserved. The endpoints are reattached once
// after the final pass, and outstanding iterators are invalidated.
func (l *dlist[T]) Sort(cmp comparison.Comparator[T]) {
	if l.size < 2 {
		return
	}

	start := l.head
	for runSize := 1; runSize < l.size; runSize *= 2 {
		start = mergePass(start, runSize, cmp)
	}

	l.head = start
	tail := start
	for tail.next != nil {
		tail = tail.next
	}
	l.tail = tail
	l.version++
}

// mergePass merges each adjacent pair of runs of up to runSize nodes in
// the chain beginning at start, and returns the new chain head. The
// chain is nil-terminated on both ends when the pass completes.
func mergePass[T any](start *node[T], runSize int, cmp comparison.Comparator[T]) *node[T] {
	var newStart, tail *node[T]

	left := start
	for left != nil {
		// Step right past the left run so the two runs are adjacent
		// and non-overlapping. leftSize ends up as the actual length
		// of the left run, which may be short at the end of the chain.
		right := left
		leftSize := 0
		for right != nil && leftSize < runSize {
			leftSize++
			right = right.next
		}
		rightSize := runSize

		for leftSize > 0 || (rightSize > 0 && right != nil) {
			var take *node[T]
			switch {
			case leftSize == 0:
				take = right
				right = right.next
				rightSize--
			case rightSize == 0 || right == nil:
				take = left
				left = left.next
				leftSize--
			case cmp(right.payload, left.payload) < 0:
				take = right
				right = right.next
				rightSize--
			default:
				// equal keys take from the left run, which keeps the
				// sort stable
				take = left
				left = left.next
				leftSize--
			}

			if tail == nil {
				newStart = take
				take.prev = nil
			} else {
				tail.next = take
				take.prev = tail
			}
			tail = take
		}

		// right now points at the first node after the merged pair
		left = right
	}

	tail.next = nil
	return newStart
}
