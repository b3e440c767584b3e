package collections

import "testing"

// chain builds a detached, correctly linked node chain for exercising
// the link engine without a list around it.
func chain(values ...int) []*node[int] {
	nodes := make([]*node[int], len(values))
	for i, v := range values {
		nodes[i] = &node[int]{payload: v}
		if i > 0 {
			nodes[i].prev = nodes[i-1]
			nodes[i-1].next = nodes[i]
		}
	}
	return nodes
}

// checkChain walks a chain from first and verifies the payload order
// and the two-link invariant at every step.
func checkChain(t *testing.T, first *node[int], values ...int) {
	t.Helper()
	if first != nil && first.prev != nil {
		t.Fatal("first node has a previous node")
	}
	n := first
	for i, v := range values {
		if n == nil {
			t.Fatalf("chain ended at %d nodes, want %d", i, len(values))
		}
		if n.payload != v {
			t.Fatalf("index %d: got %d, want %d", i, n.payload, v)
		}
		if n.next != nil && n.next.prev != n {
			t.Fatalf("index %d: forward and backward links disagree", i)
		}
		n = n.next
	}
	if n != nil {
		t.Fatalf("chain longer than the expected %d nodes", len(values))
	}
}

func TestLinkBefore(t *testing.T) {
	t.Run("before the head", func(t *testing.T) {
		nodes := chain(2, 3)
		ins := &node[int]{payload: 1}
		linkBefore(nodes[0], ins)
		checkChain(t, ins, 1, 2, 3)
	})

	t.Run("before an interior node", func(t *testing.T) {
		nodes := chain(1, 3)
		ins := &node[int]{payload: 2}
		linkBefore(nodes[1], ins)
		checkChain(t, nodes[0], 1, 2, 3)
	})

	t.Run("relinks a node already in the chain", func(t *testing.T) {
		nodes := chain(1, 2, 3)
		linkBefore(nodes[0], nodes[2])
		checkChain(t, nodes[2], 3, 1, 2)
	})
}

func TestLinkAfter(t *testing.T) {
	t.Run("after the tail", func(t *testing.T) {
		nodes := chain(1, 2)
		ins := &node[int]{payload: 3}
		linkAfter(nodes[1], ins)
		checkChain(t, nodes[0], 1, 2, 3)
	})

	t.Run("after an interior node", func(t *testing.T) {
		nodes := chain(1, 3)
		ins := &node[int]{payload: 2}
		linkAfter(nodes[0], ins)
		checkChain(t, nodes[0], 1, 2, 3)
	})
}

func TestUnlink(t *testing.T) {
	t.Run("interior node", func(t *testing.T) {
		nodes := chain(1, 2, 3)
		unlink(nodes[1])
		checkChain(t, nodes[0], 1, 3)
		if nodes[1].prev != nil || nodes[1].next != nil {
			t.Error("unlinked node still has neighbor links")
		}
	})

	t.Run("first node", func(t *testing.T) {
		nodes := chain(1, 2, 3)
		unlink(nodes[0])
		checkChain(t, nodes[1], 2, 3)
	})

	t.Run("last node", func(t *testing.T) {
		nodes := chain(1, 2, 3)
		unlink(nodes[2])
		checkChain(t, nodes[0], 1, 2)
	})

	t.Run("only node", func(t *testing.T) {
		nodes := chain(1)
		unlink(nodes[0])
		if nodes[0].prev != nil || nodes[0].next != nil {
			t.Error("unlinked node still has neighbor links")
		}
	})
}

func TestSwap(t *testing.T) {
	t.Run("adjacent nodes", func(t *testing.T) {
		nodes := chain(1, 2, 3, 4)
		swap(nodes[1], nodes[2])
		checkChain(t, nodes[0], 1, 3, 2, 4)
	})

	t.Run("adjacent nodes, reversed argument order", func(t *testing.T) {
		nodes := chain(1, 2, 3, 4)
		swap(nodes[2], nodes[1])
		checkChain(t, nodes[0], 1, 3, 2, 4)
	})

	t.Run("adjacent pair at the chain ends", func(t *testing.T) {
		nodes := chain(1, 2)
		swap(nodes[0], nodes[1])
		checkChain(t, nodes[1], 2, 1)
	})

	t.Run("non-adjacent interior nodes", func(t *testing.T) {
		nodes := chain(1, 2, 3, 4, 5)
		swap(nodes[1], nodes[3])
		checkChain(t, nodes[0], 1, 4, 3, 2, 5)
	})

	t.Run("first and last", func(t *testing.T) {
		nodes := chain(1, 2, 3, 4)
		swap(nodes[0], nodes[3])
		checkChain(t, nodes[3], 4, 2, 3, 1)
	})

	t.Run("same node is a no-op", func(t *testing.T) {
		nodes := chain(1, 2, 3)
		swap(nodes[1], nodes[1])
		checkChain(t, nodes[0], 1, 2, 3)
	})
}
