// pkg/timer/timer.go
package timer

import (
	"sync"
	"time"
)

// Handle is a cancellable repeating timer. Lifecycle ownership rests with
// the caller: nothing stops a handle internally.
type Handle struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// Repeat invokes fn every interval on its own goroutine until Stop is
// called. fn runs off the frame loop, so it should only touch state that is
// safe to share.
func Repeat(interval time.Duration, fn func()) *Handle {
	h := &Handle{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-h.done:
				return
			case <-h.ticker.C:
				fn()
			}
		}
	}()
	return h
}

// Stop cancels the timer. It is safe to call more than once.
func (h *Handle) Stop() {
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.done)
	})
}
