package lock

import (
	"context"

	"github.com/Invicton-Labs/go-stackerr"
)

// CtxMutex is a mutex whose Lock honors context cancellation, so a
// caller waiting for the lock can be abandoned by deadline or cancel.
type CtxMutex interface {
	// Lock blocks until the mutex is acquired or ctx is done. A nil
	// return means the lock is held; otherwise the context's error is
	// returned with a stack.
	Lock(ctx context.Context) stackerr.Error

	// TryLock attempts to acquire the mutex without waiting.
	TryLock() (locked bool)

	// Unlock releases the mutex. It panics if the mutex is not held.
	Unlock()
}

type ctxMutex struct {
	ch chan struct{}
}

// NewCtxMutex creates a new CtxMutex.
func NewCtxMutex() CtxMutex {
	return &ctxMutex{
		ch: make(chan struct{}, 1),
	}
}

func (mu *ctxMutex) Lock(ctx context.Context) stackerr.Error {
	select {
	case <-ctx.Done():
		return stackerr.Wrap(ctx.Err())
	case mu.ch <- struct{}{}:
		return nil
	}
}

func (mu *ctxMutex) TryLock() bool {
	select {
	case mu.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

func (mu *ctxMutex) Unlock() {
	select {
	case <-mu.ch:
	default:
		panic("lock: unlock of an unlocked CtxMutex")
	}
}

// Do runs fn while holding mu, acquiring the lock under ctx. fn is not
// called if the lock attempt fails.
func Do(ctx context.Context, mu CtxMutex, fn func() stackerr.Error) stackerr.Error {
	if err := mu.Lock(ctx); err != nil {
		return err
	}
	defer mu.Unlock()
	return fn()
}
