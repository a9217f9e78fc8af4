package remote

import (
	"sync"
	"time"
)

// Lifecycle stops the development server once it has served no call for the idle period.
// The idle countdown only runs while no call is in flight, so a long upload keeps the server up.
// A zero idle period never stops it.
type Lifecycle struct {
	mu       sync.Mutex
	idle     time.Duration
	timer    *time.Timer
	active   int
	idleFrom time.Time

	done     chan struct{}
	doneOnce sync.Once
}

// NewLifecycle starts the idle countdown.
func NewLifecycle(idle time.Duration) *Lifecycle {
	l := &Lifecycle{
		idle:     idle,
		idleFrom: time.Now(),
		done:     make(chan struct{}),
	}
	if idle > 0 {
		l.timer = time.AfterFunc(idle, l.stop)
	}
	return l
}

// Begin records the start of a call and pauses the countdown.
// The returned func ends the call; the countdown restarts after the last one ends.
func (l *Lifecycle) Begin() (end func()) {
	l.mu.Lock()
	l.active++
	if l.timer != nil {
		l.timer.Stop()
	}
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(l.end)
	}
}

func (l *Lifecycle) end() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.active--
	if l.active > 0 {
		return
	}
	l.idleFrom = time.Now()
	if l.timer != nil {
		l.timer.Reset(l.idle)
	}
}

// Active returns the number of calls in flight.
func (l *Lifecycle) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// IdleRemaining returns the time left before the server stops.
// It is zero when no countdown is running.
func (l *Lifecycle) IdleRemaining() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.timer == nil || l.active > 0 {
		return 0
	}
	return max(l.idle-time.Since(l.idleFrom), 0)
}

// Done is closed when the server should stop.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.done
}

// Shutdown cancels the countdown and closes Done. It may be called more than once.
func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	if l.timer != nil {
		l.timer.Stop()
	}
	l.mu.Unlock()
	l.stop()
}

func (l *Lifecycle) stop() {
	l.doneOnce.Do(func() { close(l.done) })
}
