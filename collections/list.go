package collections

import (
	"github.com/Invicton-Labs/go-stackerr"

	"github.com/duyanh-y4n/Collections-C/comparison"
	"github.com/duyanh-y4n/Collections-C/zero"
)

// List is a doubly linked list: an ordered, mutable sequence with O(1)
// endpoint insertion and removal, indexed access that walks from the
// nearer end, structural splicing between lists, bidirectional
// iterators with in-place mutation, and a stable in-place merge sort.
//
// A List is not safe for concurrent use; one owner mutates it at a
// time. The gensync package provides a locked wrapper for shared lists.
type List[T any] interface {
	// Size returns the number of elements in the list. O(1).
	Size() int

	// AddFirst prepends value, making it the new head.
	AddFirst(value T)
	// AddLast appends value, making it the new tail.
	AddLast(value T)
	// Add appends value. Equivalent to AddLast.
	Add(value T)
	// AddAt inserts value before the element currently at index. The
	// index must satisfy 0 <= index < Size(); end insertion goes
	// through AddLast or the splice operations instead.
	AddAt(value T, index int) stackerr.Error
	// AddAll copies every element of other to the end of this list.
	// The copies are fresh nodes sharing other's payloads; other is
	// left untouched. Fails if other is empty.
	AddAll(other List[T]) stackerr.Error
	// AddAllAt copies every element of other into this list before the
	// element at index; index == Size() appends. The new chain is
	// built fully detached and attached in a single step, so a failure
	// never leaves this list partially modified. Fails if other is
	// empty or the index is out of bounds.
	AddAllAt(other List[T], index int) stackerr.Error

	// GetFirst returns the head element, or ErrEmptyList.
	GetFirst() (T, stackerr.Error)
	// GetLast returns the tail element, or ErrEmptyList.
	GetLast() (T, stackerr.Error)
	// GetAt returns the element at index, or ErrIndexOutOfRange.
	GetAt(index int) (T, stackerr.Error)
	// ReplaceAt overwrites the payload at index and returns the old
	// payload. The list structure is untouched, so outstanding
	// iterators stay valid.
	ReplaceAt(value T, index int) (T, stackerr.Error)

	// RemoveFirst removes and returns the head element, or
	// ErrEmptyList.
	RemoveFirst() (T, stackerr.Error)
	// RemoveLast removes and returns the tail element, or
	// ErrEmptyList.
	RemoveLast() (T, stackerr.Error)
	// RemoveAt removes and returns the element at index.
	RemoveAt(index int) (T, stackerr.Error)
	// RemoveAll empties the list and reports whether it removed
	// anything.
	RemoveAll() bool

	// Splice moves every node of donor to the end of this list. No
	// payloads are copied; the nodes themselves transfer and donor is
	// left empty. An empty donor is a no-op.
	Splice(donor List[T]) stackerr.Error
	// SpliceBefore moves every node of donor into this list before the
	// element at index, leaving donor empty.
	SpliceBefore(donor List[T], index int) stackerr.Error
	// SpliceAfter moves every node of donor into this list after the
	// element at index, leaving donor empty.
	SpliceAfter(donor List[T], index int) stackerr.Error

	// Sublist returns a new list with the payloads from the inclusive
	// index range [begin, end]. The receiver is unchanged.
	Sublist(begin, end int) (List[T], stackerr.Error)
	// CopyShallow returns a new list sharing this list's payloads.
	CopyShallow() List[T]
	// CopyDeep returns a new list whose payloads are produced by
	// copyFn. If copyFn fails the copy is abandoned and no list is
	// returned.
	CopyDeep(copyFn func(value T) (T, stackerr.Error)) (List[T], stackerr.Error)
	// ToSlice returns the elements in list order.
	ToSlice() []T

	// Reverse reverses the list in place.
	Reverse()
	// Sort sorts the list in place using the three-way comparator cmp.
	// The sort is stable and only relinks the existing nodes.
	Sort(cmp comparison.Comparator[T])
	// ForEach calls visit once per element in forward order. The
	// behavior is undefined if visit mutates the list.
	ForEach(visit func(value T))

	// Iter returns a forward iterator positioned before the first
	// element.
	Iter() Iterator[T]
	// DescendingIter returns a backward iterator positioned after the
	// last element.
	DescendingIter() Iterator[T]

	// Validate walks the chain and checks the structural invariants:
	// endpoint links, forward/backward link agreement and the recorded
	// size. It returns nil on a healthy list.
	Validate() stackerr.Error
}

// dlist is the List implementation. version counts structural
// mutations; iterators capture it to detect concurrent edits they did
// not perform themselves.
type dlist[T any] struct {
	size    int
	head    *node[T]
	tail    *node[T]
	version uint64
}

// NewList returns a new empty list.
func NewList[T any]() List[T] {
	return &dlist[T]{}
}

// NewListOf returns a new list containing the given values in order.
func NewListOf[T any](values ...T) List[T] {
	l := &dlist[T]{}
	for _, v := range values {
		l.AddLast(v)
	}
	return l
}

func (l *dlist[T]) Size() int { return l.size }

// nodeAt resolves an index to a node by walking from the nearer end,
// halving the worst-case traversal versus always starting at the head.
func (l *dlist[T]) nodeAt(index int) (*node[T], bool) {
	if index < 0 || index >= l.size {
		return nil, false
	}
	var n *node[T]
	if index < l.size/2 {
		n = l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
	} else {
		n = l.tail
		for i := l.size - 1; i > index; i-- {
			n = n.prev
		}
	}
	return n, true
}

// insertBefore links ins before anchor and fixes the endpoint and size
// bookkeeping the link engine leaves to the list.
func (l *dlist[T]) insertBefore(anchor, ins *node[T]) {
	linkBefore(anchor, ins)
	if l.head == anchor {
		l.head = ins
	}
	l.size++
	l.version++
}

// insertAfter is the tail-side counterpart of insertBefore.
func (l *dlist[T]) insertAfter(anchor, ins *node[T]) {
	linkAfter(anchor, ins)
	if l.tail == anchor {
		l.tail = ins
	}
	l.size++
	l.version++
}

// appendNode links ins as the new tail, handling the empty list.
func (l *dlist[T]) appendNode(ins *node[T]) {
	if l.size == 0 {
		l.head = ins
		l.tail = ins
		l.size = 1
		l.version++
		return
	}
	l.insertAfter(l.tail, ins)
}

// removeNode unlinks n, fixes the endpoints and returns the payload.
func (l *dlist[T]) removeNode(n *node[T]) T {
	if l.head == n {
		l.head = n.next
	}
	if l.tail == n {
		l.tail = n.prev
	}
	unlink(n)
	l.size--
	l.version++
	return n.payload
}

func (l *dlist[T]) AddFirst(value T) {
	n := &node[T]{payload: value}
	if l.size == 0 {
		l.head = n
		l.tail = n
		l.size = 1
		l.version++
		return
	}
	l.insertBefore(l.head, n)
}

func (l *dlist[T]) AddLast(value T) {
	l.appendNode(&node[T]{payload: value})
}

func (l *dlist[T]) Add(value T) {
	l.AddLast(value)
}

func (l *dlist[T]) AddAt(value T, index int) stackerr.Error {
	anchor, ok := l.nodeAt(index)
	if !ok {
		return stackerr.Wrap(ErrIndexOutOfRange)
	}
	l.insertBefore(anchor, &node[T]{payload: value})
	return nil
}

func (l *dlist[T]) AddAll(other List[T]) stackerr.Error {
	return l.AddAllAt(other, l.size)
}

func (l *dlist[T]) AddAllAt(other List[T], index int) stackerr.Error {
	if index < 0 || index > l.size {
		return stackerr.Wrap(ErrIndexOutOfRange)
	}
	count := other.Size()
	if count == 0 {
		return stackerr.Wrap(ErrEmptyList)
	}

	// Build the whole copy as a detached chain first so the receiver
	// is never visible in a partially modified state.
	var first, last *node[T]
	other.ForEach(func(v T) {
		n := &node[T]{payload: v}
		if first == nil {
			first = n
			last = n
		} else {
			n.prev = last
			last.next = n
			last = n
		}
	})

	var left, right *node[T]
	if index == l.size {
		left = l.tail
	} else {
		right, _ = l.nodeAt(index)
		left = right.prev
	}
	l.attachChain(first, last, left, right, count)
	return nil
}

// attachChain links the detached chain [first, last] of n nodes between
// left and right, either of which may be nil to mean the corresponding
// endpoint of the list.
func (l *dlist[T]) attachChain(first, last, left, right *node[T], n int) {
	if left != nil {
		left.next = first
		first.prev = left
	} else {
		first.prev = nil
		l.head = first
	}
	if right != nil {
		right.prev = last
		last.next = right
	} else {
		last.next = nil
		l.tail = last
	}
	l.size += n
	l.version++
}

func (l *dlist[T]) GetFirst() (T, stackerr.Error) {
	if l.size == 0 {
		return zero.ZeroValue[T](), stackerr.Wrap(ErrEmptyList)
	}
	return l.head.payload, nil
}

func (l *dlist[T]) GetLast() (T, stackerr.Error) {
	if l.size == 0 {
		return zero.ZeroValue[T](), stackerr.Wrap(ErrEmptyList)
	}
	return l.tail.payload, nil
}

func (l *dlist[T]) GetAt(index int) (T, stackerr.Error) {
	n, ok := l.nodeAt(index)
	if !ok {
		return zero.ZeroValue[T](), stackerr.Wrap(ErrIndexOutOfRange)
	}
	return n.payload, nil
}

func (l *dlist[T]) ReplaceAt(value T, index int) (T, stackerr.Error) {
	n, ok := l.nodeAt(index)
	if !ok {
		return zero.ZeroValue[T](), stackerr.Wrap(ErrIndexOutOfRange)
	}
	old := n.payload
	n.payload = value
	return old, nil
}

func (l *dlist[T]) RemoveFirst() (T, stackerr.Error) {
	if l.size == 0 {
		return zero.ZeroValue[T](), stackerr.Wrap(ErrEmptyList)
	}
	return l.removeNode(l.head), nil
}

func (l *dlist[T]) RemoveLast() (T, stackerr.Error) {
	if l.size == 0 {
		return zero.ZeroValue[T](), stackerr.Wrap(ErrEmptyList)
	}
	return l.removeNode(l.tail), nil
}

func (l *dlist[T]) RemoveAt(index int) (T, stackerr.Error) {
	n, ok := l.nodeAt(index)
	if !ok {
		return zero.ZeroValue[T](), stackerr.Wrap(ErrIndexOutOfRange)
	}
	return l.removeNode(n), nil
}

func (l *dlist[T]) RemoveAll() bool {
	if l.size == 0 {
		return false
	}
	n := l.head
	for n != nil {
		next := n.next
		n.prev = nil
		n.next = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
	l.version++
	return true
}

func (l *dlist[T]) Sublist(begin, end int) (List[T], stackerr.Error) {
	if begin < 0 || begin > end || end >= l.size {
		return nil, stackerr.Wrap(ErrInvalidRange)
	}
	sub := &dlist[T]{}
	n, _ := l.nodeAt(begin)
	for i := begin; i <= end; i++ {
		sub.AddLast(n.payload)
		n = n.next
	}
	return sub, nil
}

func (l *dlist[T]) CopyShallow() List[T] {
	dup := &dlist[T]{}
	for n := l.head; n != nil; n = n.next {
		dup.AddLast(n.payload)
	}
	return dup
}

func (l *dlist[T]) CopyDeep(copyFn func(value T) (T, stackerr.Error)) (List[T], stackerr.Error) {
	dup := &dlist[T]{}
	for n := l.head; n != nil; n = n.next {
		v, err := copyFn(n.payload)
		if err != nil {
			return nil, err
		}
		dup.AddLast(v)
	}
	return dup, nil
}

func (l *dlist[T]) ToSlice() []T {
	s := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		s = append(s, n.payload)
	}
	return s
}

// Reverse swaps symmetric node positions from both ends inward, then
// exchanges the endpoints. The middle node of an odd-sized list stays
// where it is.
func (l *dlist[T]) Reverse() {
	if l.size < 2 {
		return
	}
	oldHead, oldTail := l.head, l.tail

	left, right := l.head, l.tail
	for i := 0; i < l.size/2; i++ {
		nextLeft := left.next
		nextRight := right.prev
		swap(left, right)
		left = nextLeft
		right = nextRight
	}

	l.head = oldTail
	l.tail = oldHead
	l.version++
}

func (l *dlist[T]) ForEach(visit func(value T)) {
	for n := l.head; n != nil; n = n.next {
		visit(n.payload)
	}
}

func (l *dlist[T]) Validate() stackerr.Error {
	if l.size == 0 {
		if l.head != nil || l.tail != nil {
			return stackerr.Errorf("empty list has dangling endpoints")
		}
		return nil
	}
	if l.head == nil || l.tail == nil {
		return stackerr.Errorf("list of size %d is missing an endpoint", l.size)
	}
	if l.head.prev != nil {
		return stackerr.Errorf("head has a previous node")
	}
	if l.tail.next != nil {
		return stackerr.Errorf("tail has a next node")
	}

	count := 0
	var last *node[T]
	for n := l.head; n != nil; n = n.next {
		if n.next != nil && n.next.prev != n {
			return stackerr.Errorf("forward and backward links disagree at index %d", count)
		}
		count++
		if count > l.size {
			return stackerr.Errorf("chain is longer than the recorded size %d", l.size)
		}
		last = n
	}
	if count != l.size {
		return stackerr.Errorf("recorded size %d but walked %d nodes", l.size, count)
	}
	if last != l.tail {
		return stackerr.Errorf("forward walk does not end at the tail")
	}
	return nil
}
