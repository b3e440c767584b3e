package collections

import (
	"github.com/Invicton-Labs/go-stackerr"

	"github.com/duyanh-y4n/Collections-C/zero"
)

// Iterator is a stateful cursor over a list. It supports lookahead,
// replacing or removing the last returned element, and inserting at the
// current position.
//
// An iterator is bound to the list version it last saw: any structural
// mutation the iterator did not perform itself (including one made by
// another iterator) invalidates it, and every subsequent operation
// fails with ErrIteratorInvalidated. Mutations made through the
// iterator keep it valid.
type Iterator[T any] interface {
	// HasNext reports whether another element remains.
	HasNext() bool
	// Next returns the upcoming element and advances, or ErrEndOfList.
	Next() (T, stackerr.Error)
	// Remove detaches the last returned element from the list and
	// returns its payload. Calling Remove again without an intervening
	// Next returns ErrNothingToRemove and leaves the list unchanged.
	Remove() (T, stackerr.Error)
	// Replace overwrites the payload of the last returned element and
	// returns the old payload.
	Replace(value T) (T, stackerr.Error)
	// Add inserts value at the current position, between the last
	// returned element and the upcoming one. The new element becomes
	// the last returned, so a following Replace or Remove targets it.
	Add(value T) stackerr.Error
	// Index returns the index of the last returned element.
	Index() (int, stackerr.Error)
}

// Iter returns a forward iterator positioned before the first element.
func (l *dlist[T]) Iter() Iterator[T] {
	return &forwardIter[T]{list: l, next: l.head, version: l.version}
}

// DescendingIter returns a backward iterator positioned after the last
// element. It walks tail to head.
func (l *dlist[T]) DescendingIter() Iterator[T] {
	return &reverseIter[T]{list: l, next: l.tail, index: l.size - 1, version: l.version}
}

type forwardIter[T any] struct {
	list *dlist[T]
	// last is the most recently yielded node; nil after a removal.
	last *node[T]
	// next is the node the next call to Next will yield.
	next *node[T]
	// index is the index of the upcoming element.
	index   int
	version uint64
}

func (it *forwardIter[T]) check() stackerr.Error {
	if it.version != it.list.version {
		return stackerr.Wrap(ErrIteratorInvalidated)
	}
	return nil
}

func (it *forwardIter[T]) HasNext() bool {
	return it.next != nil
}

func (it *forwardIter[T]) Next() (T, stackerr.Error) {
	if err := it.check(); err != nil {
		return zero.ZeroValue[T](), err
	}
	if it.next == nil {
		return zero.ZeroValue[T](), stackerr.Wrap(ErrEndOfList)
	}
	it.last = it.next
	it.next = it.next.next
	it.index++
	return it.last.payload, nil
}

func (it *forwardIter[T]) Remove() (T, stackerr.Error) {
	if err := it.check(); err != nil {
		return zero.ZeroValue[T](), err
	}
	if it.last == nil {
		return zero.ZeroValue[T](), stackerr.Wrap(ErrNothingToRemove)
	}
	v := it.list.removeNode(it.last)
	it.last = nil
	it.index--
	it.version = it.list.version
	return v, nil
}

func (it *forwardIter[T]) Replace(value T) (T, stackerr.Error) {
	if err := it.check(); err != nil {
		return zero.ZeroValue[T](), err
	}
	if it.last == nil {
		return zero.ZeroValue[T](), stackerr.Wrap(ErrNothingToReplace)
	}
	old := it.last.payload
	it.last.payload = value
	return old, nil
}

func (it *forwardIter[T]) Add(value T) stackerr.Error {
	if err := it.check(); err != nil {
		return err
	}
	ins := &node[T]{payload: value}
	if it.next == nil {
		it.list.appendNode(ins)
	} else {
		it.list.insertBefore(it.next, ins)
	}
	it.last = ins
	it.index++
	it.version = it.list.version
	return nil
}

func (it *forwardIter[T]) Index() (int, stackerr.Error) {
	if err := it.check(); err != nil {
		return 0, err
	}
	return it.index - 1, nil
}

type reverseIter[T any] struct {
	list *dlist[T]
	last *node[T]
	next *node[T]
	// index is the index of the upcoming element; -1 past the head.
	index   int
	version uint64
}

func (it *reverseIter[T]) check() stackerr.Error {
	if it.version != it.list.version {
		return stackerr.Wrap(ErrIteratorInvalidated)
	}
	return nil
}

func (it *reverseIter[T]) HasNext() bool {
	return it.next != nil
}

func (it *reverseIter[T]) Next() (T, stackerr.Error) {
	if err := it.check(); err != nil {
		return zero.ZeroValue[T](), err
	}
	if it.next == nil {
		return zero.ZeroValue[T](), stackerr.Wrap(ErrEndOfList)
	}
	it.last = it.next
	it.next = it.next.prev
	it.index--
	return it.last.payload, nil
}

func (it *reverseIter[T]) Remove() (T, stackerr.Error) {
	if err := it.check(); err != nil {
		return zero.ZeroValue[T](), err
	}
	if it.last == nil {
		return zero.ZeroValue[T](), stackerr.Wrap(ErrNothingToRemove)
	}
	// The removed node sits after the upcoming one, so the upcoming
	// element's index is unchanged.
	v := it.list.removeNode(it.last)
	it.last = nil
	it.version = it.list.version
	return v, nil
}

func (it *reverseIter[T]) Replace(value T) (T, stackerr.Error) {
	if err := it.check(); err != nil {
		return zero.ZeroValue[T](), err
	}
	if it.last == nil {
		return zero.ZeroValue[T](), stackerr.Wrap(ErrNothingToReplace)
	}
	old := it.last.payload
	it.last.payload = value
	return old, nil
}

func (it *reverseIter[T]) Add(value T) stackerr.Error {
	if err := it.check(); err != nil {
		return err
	}
	ins := &node[T]{payload: value}
	if it.next == nil {
		// Past the head; the insertion becomes the new first element.
		if it.list.size == 0 {
			it.list.appendNode(ins)
		} else {
			it.list.insertBefore(it.list.head, ins)
		}
	} else {
		it.list.insertAfter(it.next, ins)
	}
	it.last = ins
	it.version = it.list.version
	return nil
}

func (it *reverseIter[T]) Index() (int, stackerr.Error) {
	if err := it.check(); err != nil {
		return 0, err
	}
	return it.index + 1, nil
}
