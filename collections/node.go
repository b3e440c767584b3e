package collections

// node is a single chain element: one payload and two neighbor links.
// Nodes never escape the owning list; all external access goes through
// List or its iterators.
type node[T any] struct {
	payload T
	prev    *node[T]
	next    *node[T]
}

// The functions below are pure pointer surgery. They restore the
// two-link invariant (a.next == b iff b.prev == a) for every node they
// touch, and they never look at list size or endpoints; that
// bookkeeping belongs to the caller.

// linkBefore places ins immediately before anchor. If ins is currently
// linked elsewhere it is cut out of its old position first.
func linkBefore[T any](anchor, ins *node[T]) {
	// close the gap at the old position
	if ins.next != nil {
		ins.next.prev = ins.prev
	}
	if ins.prev != nil {
		ins.prev.next = ins.next
	}

	if anchor.prev == nil {
		ins.prev = nil
		ins.next = anchor
		anchor.prev = ins
	} else {
		ins.prev = anchor.prev
		ins.prev.next = ins
		ins.next = anchor
		anchor.prev = ins
	}
}

// linkAfter places ins immediately after anchor, cutting ins out of its
// old position first if it has one.
func linkAfter[T any](anchor, ins *node[T]) {
	if ins.next != nil {
		ins.next.prev = ins.prev
	}
	if ins.prev != nil {
		ins.prev.next = ins.next
	}

	if anchor.next == nil {
		ins.prev = anchor
		ins.next = nil
		anchor.next = ins
	} else {
		ins.next = anchor.next
		ins.next.prev = ins
		ins.prev = anchor
		anchor.next = ins
	}
}

// unlink detaches n, reconnecting its neighbors to each other. The
// payload is left in place.
func unlink[T any](n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
}

// swap exchanges the chain positions of n1 and n2. The adjacency check
// runs unconditionally first: the generic four-pointer exchange would
// write self-referential links when the nodes are neighbors.
func swap[T any](n1, n2 *node[T]) {
	if n1 == n2 {
		return
	}
	if n1.next == n2 || n2.next == n1 {
		swapAdjacent(n1, n2)
		return
	}

	n1Left, n1Right := n1.prev, n1.next
	n2Left, n2Right := n2.prev, n2.next

	if n1Left != nil {
		n1Left.next = n2
	}
	n2.prev = n1Left

	if n1Right != nil {
		n1Right.prev = n2
	}
	n2.next = n1Right

	if n2Left != nil {
		n2Left.next = n1
	}
	n1.prev = n2Left

	if n2Right != nil {
		n2Right.prev = n1
	}
	n1.next = n2Right
}

// swapAdjacent exchanges two directly neighboring nodes.
func swapAdjacent[T any](n1, n2 *node[T]) {
	if n2.next == n1 {
		n1, n2 = n2, n1
	}

	// n1 directly precedes n2
	if n2.next != nil {
		n2.next.prev = n1
	}
	n1.next = n2.next

	if n1.prev != nil {
		n1.prev.next = n2
	}
	n2.prev = n1.prev

	n1.prev = n2
	n2.next = n1
}
