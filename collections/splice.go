package collections

import "github.com/Invicton-Labs/go-stackerr"

// The splice engine transfers the entire node chain of a donor list
// into a receiver without copying payloads. Ownership of every donor
// node moves to the receiver and the donor is left empty.

func (l *dlist[T]) Splice(donor List[T]) stackerr.Error {
	d, err := l.donor(donor)
	if err != nil {
		return err
	}
	l.spliceBetween(d, l.tail, nil)
	return nil
}

func (l *dlist[T]) SpliceBefore(donor List[T], index int) stackerr.Error {
	d, err := l.donor(donor)
	if err != nil {
		return err
	}
	right, ok := l.nodeAt(index)
	if !ok {
		return stackerr.Wrap(ErrIndexOutOfRange)
	}
	l.spliceBetween(d, right.prev, right)
	return nil
}

func (l *dlist[T]) SpliceAfter(donor List[T], index int) stackerr.Error {
	d, err := l.donor(donor)
	if err != nil {
		return err
	}
	left, ok := l.nodeAt(index)
	if !ok {
		return stackerr.Wrap(ErrIndexOutOfRange)
	}
	l.spliceBetween(d, left, left.next)
	return nil
}

// donor checks that other's nodes can actually be re-owned by l.
func (l *dlist[T]) donor(other List[T]) (*dlist[T], stackerr.Error) {
	d, ok := other.(*dlist[T])
	if !ok {
		return nil, stackerr.Errorf("collections: a foreign List implementation (%T) cannot donate nodes", other)
	}
	if d == l {
		return nil, stackerr.Errorf("collections: cannot splice a list into itself")
	}
	return d, nil
}

// spliceBetween inserts d's whole chain between left and right, which
// must be directly adjacent in l; a nil bound means the corresponding
// endpoint of l. An empty donor is a no-op.
func (l *dlist[T]) spliceBetween(d *dlist[T], left, right *node[T]) {
	if d.size == 0 {
		return
	}
	l.attachChain(d.head, d.tail, left, right, d.size)
	d.head = nil
	d.tail = nil
	d.size = 0
	d.version++
}
