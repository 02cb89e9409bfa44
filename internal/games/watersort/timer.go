package watersort

import (
	"sync"
	"time"
)

// Timer counts whole seconds of play. It is either stopped or running; a
// running timer owns one goroutine that exits when the timer stops.
type Timer struct {
	mu       sync.Mutex
	interval time.Duration
	elapsed  int
	quit     chan struct{} // nil while stopped
	done     chan struct{}
}

// NewTimer returns a stopped timer that counts once per interval.
// A non-positive interval means one second.
func NewTimer(interval time.Duration) *Timer {
	if interval <= 0 {
		interval = time.Second
	}
	return &Timer{interval: interval}
}

// Start begins counting. It is a no-op while already running.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.quit != nil {
		return
	}
	t.quit = make(chan struct{})
	t.done = make(chan struct{})
	go t.run(t.quit, t.done)
}

func (t *Timer) run(quit, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.tick(quit)
		case <-quit:
			return
		}
	}
}

// tick counts one interval for the run that owns quit.
// A late tick from a stopped run is dropped.
func (t *Timer) tick(quit chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.quit == quit && quit != nil {
		t.elapsed++
	}
}

// Stop halts counting and keeps the elapsed value. It returns after the
// ticking goroutine has exited.
func (t *Timer) Stop() {
	t.mu.Lock()
	if t.quit == nil {
		t.mu.Unlock()
		return
	}
	close(t.quit)
	done := t.done
	t.quit, t.done = nil, nil
	t.mu.Unlock()

	<-done
}

// Reset stops the timer and zeroes it.
func (t *Timer) Reset() {
	t.Stop()
	t.mu.Lock()
	t.elapsed = 0
	t.mu.Unlock()
}

// Elapsed returns the counted seconds.
func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// Running reports whether the timer is counting.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.quit != nil
}
