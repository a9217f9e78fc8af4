// Package notify delivers one-shot outcome messages for user actions.
package notify

import (
	"sync"
	"time"

	"go.trai.ch/cram/internal/core/ports"
	"go.trai.ch/zerr"
)

// Toast is a transient outcome message.
type Toast struct {
	Message string
	Err     error
	At      time.Time
}

// Failed reports whether the toast reports a failure.
func (t Toast) Failed() bool {
	return t.Err != nil
}

// Notifier implements ports.Notifier.
// Toasts go to attached subscribers; with none attached they are logged.
type Notifier struct {
	log ports.Logger
	now func() time.Time

	mu   sync.Mutex
	subs map[int]chan Toast
	next int
}

// New creates a Notifier that falls back to log.
func New(log ports.Logger) *Notifier {
	return &Notifier{
		log:  log,
		now:  time.Now,
		subs: make(map[int]chan Toast),
	}
}

// Success reports a completed action.
func (n *Notifier) Success(msg string) {
	if n.deliver(Toast{Message: msg, At: n.now()}) {
		return
	}
	n.log.Info(msg)
}

// Failure reports a failed action together with its cause.
func (n *Notifier) Failure(msg string, err error) {
	if n.deliver(Toast{Message: msg, Err: err, At: n.now()}) {
		return
	}
	if err == nil {
		n.log.Warn(msg)
		return
	}
	n.log.Error(zerr.Wrap(err, msg))
}

// Subscribe attaches a toast consumer. Slow consumers lose toasts rather than
// stall the caller. The returned function detaches and closes the channel.
func (n *Notifier) Subscribe(buffer int) (<-chan Toast, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Toast, buffer)

	n.mu.Lock()
	id := n.next
	n.next++
	n.subs[id] = ch
	n.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
			close(ch)
		})
	}
}

func (n *Notifier) deliver(t Toast) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.subs) == 0 {
		return false
	}
	for _, ch := range n.subs {
		select {
		case ch <- t:
		default:
		}
	}
	return true
}
