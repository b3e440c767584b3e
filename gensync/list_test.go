package gensync

import (
	"sync"
	"testing"

	"github.com/Invicton-Labs/go-stackerr"

	"github.com/duyanh-y4n/Collections-C/comparison"
)

func TestListBasicOps(t *testing.T) {
	l := NewList(2, 3)
	l.AddFirst(1)
	l.AddLast(4)

	if l.Size() != 4 {
		t.Fatalf("size: got %d, want 4", l.Size())
	}

	got := l.Load()
	want := []int{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}

	if v, err := l.RemoveFirst(); err != nil || v != 1 {
		t.Errorf("RemoveFirst: got %d, %v", v, err)
	}
	if v, err := l.RemoveLast(); err != nil || v != 4 {
		t.Errorf("RemoveLast: got %d, %v", v, err)
	}
	if v, err := l.GetAt(1); err != nil || v != 3 {
		t.Errorf("GetAt(1): got %d, %v", v, err)
	}
}

func TestListConcurrentAppends(t *testing.T) {
	const goroutines = 16
	const perGoroutine = 100

	l := NewList[int]()
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				l.AddLast(i)
			}
		}()
	}
	wg.Wait()

	if l.Size() != goroutines*perGoroutine {
		t.Errorf("size: got %d, want %d", l.Size(), goroutines*perGoroutine)
	}
}

func TestListSort(t *testing.T) {
	l := NewList(3, 1, 2)
	l.Sort(comparison.Ordered[int]())

	got := l.Load()
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestListSplice(t *testing.T) {
	l1 := NewList(1, 2)
	l2 := NewList(3, 4)

	if err := l1.Splice(l2); err != nil {
		t.Fatal(err)
	}
	if l1.Size() != 4 {
		t.Errorf("receiver size: got %d, want 4", l1.Size())
	}
	if l2.Size() != 0 {
		t.Errorf("donor size: got %d, want 0", l2.Size())
	}

	got := l1.Load()
	want := []int{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}

	t.Run("self splice is rejected", func(t *testing.T) {
		l := NewList(1)
		if err := l.Splice(l); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestRangeParallel(t *testing.T) {
	t.Run("visits every element", func(t *testing.T) {
		l := NewList[int]()
		total := 0
		for i := 1; i <= 100; i++ {
			l.AddLast(i)
			total += i
		}

		var mu sync.Mutex
		sum := 0
		err := l.RangeParallel(7, func(v int) stackerr.Error {
			mu.Lock()
			defer mu.Unlock()
			sum += v
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if sum != total {
			t.Errorf("sum: got %d, want %d", sum, total)
		}
	})

	t.Run("propagates errors", func(t *testing.T) {
		l := NewList(1, 2, 3)
		err := l.RangeParallel(1, func(v int) stackerr.Error {
			if v == 2 {
				return stackerr.Errorf("refusing %d", v)
			}
			return nil
		})
		if err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("recovers panics into errors", func(t *testing.T) {
		l := NewList(1)
		err := l.RangeParallel(1, func(v int) stackerr.Error {
			panic("boom")
		})
		if err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		l := NewList[int]()
		if err := l.RangeParallel(4, func(int) stackerr.Error {
			t.Error("visitor called for an empty list")
			return nil
		}); err != nil {
			t.Fatal(err)
		}
	})
}
