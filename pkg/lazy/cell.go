// Package lazy provides a concurrency-safe memoization cell for values that
// are expensive or unsafe to build before they are first needed.
//
// Unlike sync.Once, a Cell distinguishes failure from completion: an
// initializer that returns an error leaves the cell empty so a later call can
// retry, while a successful initialization (including one that yields a nil
// value) is memoized and never re-run.
package lazy

import (
	"sync"
	"sync/atomic"
)

// Cell memoizes the result of an initializer function.
//
// The zero value is an empty cell, ready for use. A Cell must not be copied
// after first use.
//
// Example usage:
//
//	var cell lazy.Cell[*Server]
//	srv, err := cell.Get(func() (*Server, error) {
//	    return buildServer()
//	})
type Cell[T any] struct {
	done atomic.Bool
	mu   sync.Mutex
	val  T
}

// Get returns the memoized value, running init to produce it if the cell is
// still empty. At most one call ever runs init to completion; concurrent
// callers block until the winner finishes and then share its result.
//
// If init returns an error, the error is returned to the caller that ran it
// and the cell stays empty, so a subsequent Get retries. If init succeeds,
// its value is memoized even when it is the zero value; callers that model
// "checked and absent" should return (nil, nil) and treat the memoized nil
// as a terminal answer. Callers that need failure itself memoized fold the
// error into T and return nil from init.
func (c *Cell[T]) Get(init func() (T, error)) (T, error) {
	if c.done.Load() {
		return c.val, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done.Load() {
		return c.val, nil
	}

	val, err := init()
	if err != nil {
		var zero T
		return zero, err
	}

	c.val = val
	c.done.Store(true)
	return val, nil
}

// Resolved reports whether the cell holds a memoized value, returning it
// without running any initializer.
func (c *Cell[T]) Resolved() (T, bool) {
	if c.done.Load() {
		return c.val, true
	}
	var zero T
	return zero, false
}
