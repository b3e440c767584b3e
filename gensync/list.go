package gensync

import (
	"sync"

	"github.com/Invicton-Labs/go-stackerr"
	"golang.org/x/sync/errgroup"

	"github.com/duyanh-y4n/Collections-C/collections"
	"github.com/duyanh-y4n/Collections-C/comparison"
	"github.com/duyanh-y4n/Collections-C/numbers"
)

// List is a mutex-guarded wrapper around collections.List for lists
// shared between goroutines. The wrapped list itself stays single
// owner; this wrapper is the locking collaborator the core list
// documentation asks for. Iterators are not exposed: they hold
// positional state that cannot be made safe across the lock boundary.
// Use Load for a snapshot or RangeParallel to fan work out.
type List[T any] interface {
	// Size returns the number of elements.
	Size() int
	// AddFirst prepends value.
	AddFirst(value T)
	// AddLast appends value.
	AddLast(value T)
	// AddAt inserts value before the element currently at index.
	AddAt(value T, index int) stackerr.Error
	// GetFirst returns the head element.
	GetFirst() (T, stackerr.Error)
	// GetLast returns the tail element.
	GetLast() (T, stackerr.Error)
	// GetAt returns the element at index.
	GetAt(index int) (T, stackerr.Error)
	// ReplaceAt overwrites the payload at index, returning the old one.
	ReplaceAt(value T, index int) (T, stackerr.Error)
	// RemoveFirst removes and returns the head element.
	RemoveFirst() (T, stackerr.Error)
	// RemoveLast removes and returns the tail element.
	RemoveLast() (T, stackerr.Error)
	// RemoveAt removes and returns the element at index.
	RemoveAt(index int) (T, stackerr.Error)
	// RemoveAll empties the list, reporting whether anything was
	// removed.
	RemoveAll() bool
	// Load returns a snapshot copy of the elements in list order.
	Load() []T
	// Sort sorts the list in place with the given comparator.
	Sort(cmp comparison.Comparator[T])
	// Reverse reverses the list in place.
	Reverse()
	// Splice moves every element of donor to the end of this list,
	// leaving donor empty. Both lists are locked for the transfer.
	Splice(donor List[T]) stackerr.Error
	// RangeParallel snapshots the list and calls f once per element
	// from a pool of goroutines, batchSize elements per goroutine.
	// Panics in f are recovered into errors. The list itself is not
	// locked while f runs.
	RangeParallel(batchSize int, f func(value T) stackerr.Error) stackerr.Error
}

type list[T any] struct {
	l     sync.Mutex
	inner collections.List[T]
}

// NewList creates a synchronized list containing the given values.
func NewList[T any](initial ...T) List[T] {
	return &list[T]{inner: collections.NewListOf[T](initial...)}
}

func (s *list[T]) Size() int {
	s.l.Lock()
	defer s.l.Unlock()
	return s.inner.Size()
}

func (s *list[T]) AddFirst(value T) {
	s.l.Lock()
	defer s.l.Unlock()
	s.inner.AddFirst(value)
}

func (s *list[T]) AddLast(value T) {
	s.l.Lock()
	defer s.l.Unlock()
	s.inner.AddLast(value)
}

func (s *list[T]) AddAt(value T, index int) stackerr.Error {
	s.l.Lock()
	defer s.l.Unlock()
	return s.inner.AddAt(value, index)
}

func (s *list[T]) GetFirst() (T, stackerr.Error) {
	s.l.Lock()
	defer s.l.Unlock()
	return s.inner.GetFirst()
}

func (s *list[T]) GetLast() (T, stackerr.Error) {
	s.l.Lock()
	defer s.l.Unlock()
	return s.inner.GetLast()
}

func (s *list[T]) GetAt(index int) (T, stackerr.Error) {
	s.l.Lock()
	defer s.l.Unlock()
	return s.inner.GetAt(index)
}

func (s *list[T]) ReplaceAt(value T, index int) (T, stackerr.Error) {
	s.l.Lock()
	defer s.l.Unlock()
	return s.inner.ReplaceAt(value, index)
}

func (s *list[T]) RemoveFirst() (T, stackerr.Error) {
	s.l.Lock()
	defer s.l.Unlock()
	return s.inner.RemoveFirst()
}

func (s *list[T]) RemoveLast() (T, stackerr.Error) {
	s.l.Lock()
	defer s.l.Unlock()
	return s.inner.RemoveLast()
}

func (s *list[T]) RemoveAt(index int) (T, stackerr.Error) {
	s.l.Lock()
	defer s.l.Unlock()
	return s.inner.RemoveAt(index)
}

func (s *list[T]) RemoveAll() bool {
	s.l.Lock()
	defer s.l.Unlock()
	return s.inner.RemoveAll()
}

func (s *list[T]) Load() []T {
	s.l.Lock()
	defer s.l.Unlock()
	return s.inner.ToSlice()
}

func (s *list[T]) Sort(cmp comparison.Comparator[T]) {
	s.l.Lock()
	defer s.l.Unlock()
	s.inner.Sort(cmp)
}

func (s *list[T]) Reverse() {
	s.l.Lock()
	defer s.l.Unlock()
	s.inner.Reverse()
}

// spliceLock serializes cross-list splices so two goroutines splicing
// in opposite directions cannot deadlock on the per-list mutexes.
var spliceLock sync.Mutex

func (s *list[T]) Splice(donor List[T]) stackerr.Error {
	d, ok := donor.(*list[T])
	if !ok {
		return stackerr.Errorf("gensync: a foreign List implementation (%T) cannot donate nodes", donor)
	}
	if d == s {
		return stackerr.Errorf("gensync: cannot splice a list into itself")
	}

	spliceLock.Lock()
	defer spliceLock.Unlock()
	s.l.Lock()
	defer s.l.Unlock()
	d.l.Lock()
	defer d.l.Unlock()
	return s.inner.Splice(d.inner)
}

func (s *list[T]) RangeParallel(batchSize int, f func(value T) stackerr.Error) stackerr.Error {
	snapshot := s.Load()
	if batchSize < 1 {
		batchSize = 1
	}

	errgrp := errgroup.Group{}
	for i := 0; i < len(snapshot); i += batchSize {
		batch := snapshot[i:numbers.Min(len(snapshot), i+batchSize)]
		errgrp.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = stackerr.FromRecover(r)
				}
			}()
			for _, v := range batch {
				if ferr := f(v); ferr != nil {
					return ferr
				}
			}
			return nil
		})
	}
	if err := errgrp.Wait(); err != nil {
		return stackerr.Wrap(err)
	}
	return nil
}
