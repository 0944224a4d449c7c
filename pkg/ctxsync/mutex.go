// Package ctxsync provides synchronization primitives that honor context
// cancellation.
package ctxsync

import (
	"context"
)

// A Mutex is a mutual exclusion lock whose acquisition can be abandoned
// when a context is cancelled. The zero value is not usable; create one
// with NewMutex.
type Mutex struct {
	sem chan struct{}
}

// NewMutex creates a new unlocked Mutex.
func NewMutex() *Mutex {
	return &Mutex{sem: make(chan struct{}, 1)}
}

// Acquire locks the mutex, blocking until it is available or ctx is done.
// It returns the context error when the wait was abandoned.
func (m *Mutex) Acquire(ctx context.Context) error {
	// a done context wins even when the mutex is free
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case m.sem <- struct{}{}:
		return nil
	}
}

// TryAcquire locks the mutex if it is free and reports whether it did.
func (m *Mutex) TryAcquire() bool {
	select {
	case m.sem <- struct{}{}:
		return true
	default:
		return false
	}
}

// Release unlocks the mutex. It panics if the mutex is not locked.
func (m *Mutex) Release() {
	select {
	case <-m.sem:
	default:
		panic("ctxsync: release of unlocked mutex")
	}
}
