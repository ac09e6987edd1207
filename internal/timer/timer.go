// Package timer provides the interruptible wait that paces sampling
// cycles and carries the shutdown request into the sampling loop.
package timer

import (
	"sync"
	"time"
)

// Timer blocks for a configured duration unless interrupted first.
// Interruption is one-way: once interrupted, every later Wait returns
// immediately. The zero value is not usable; construct with New.
type Timer struct {
	mu          sync.Mutex
	interrupted bool
	done        chan struct{}
}

func New() *Timer {
	return &Timer{done: make(chan struct{})}
}

// Wait blocks until the duration elapses or Interrupt is called,
// whichever comes first. It reports true when the full duration
// elapsed and false when interrupted. An interrupt delivered before
// Wait is entered makes it return false without blocking, so a wakeup
// cannot be lost between cycles.
func (t *Timer) Wait(d time.Duration) bool {
	t.mu.Lock()
	if t.interrupted {
		t.mu.Unlock()
		return false
	}
	done := t.done
	t.mu.Unlock()

	expire := time.NewTimer(d)
	defer expire.Stop()

	select {
	case <-expire.C:
		return true
	case <-done:
		return false
	}
}

// Interrupt permanently wakes the timer. It is idempotent and safe to
// call from a goroutine other than the waiter's.
func (t *Timer) Interrupt() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.interrupted {
		return
	}
	t.interrupted = true
	close(t.done)
}
