// Package surfaces describes the display surfaces that render the timer and
// fans out refresh requests to them.
package surfaces

import (
	"sync"
	"time"

	"github.com/julianstephens/sipwait/internal/logger"
)

// Invalidation asks a surface to re-read the store now instead of waiting
// for its next scheduled refresh.
type Invalidation struct {
	At time.Time
}

// Dispatcher delivers invalidations to every subscribed surface in this
// process. It never blocks the caller: a subscriber that already has an
// invalidation queued does not need another.
type Dispatcher struct {
	mu     sync.Mutex
	subs   map[string]chan Invalidation
	closed bool
	now    func() time.Time
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		subs: make(map[string]chan Invalidation),
		now:  time.Now,
	}
}

// Subscribe registers a surface under name. Subscribing an existing name
// replaces its channel and closes the old one.
func (d *Dispatcher) Subscribe(name string, buffer int) <-chan Invalidation {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Invalidation, buffer)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		close(ch)
		return ch
	}
	if old, ok := d.subs[name]; ok {
		close(old)
	}
	d.subs[name] = ch
	return ch
}

func (d *Dispatcher) Unsubscribe(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if ch, ok := d.subs[name]; ok {
		close(ch)
		delete(d.subs, name)
	}
}

// InvalidateDisplays notifies every subscriber.
func (d *Dispatcher) InvalidateDisplays() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	msg := Invalidation{At: d.now()}
	for name, ch := range d.subs {
		select {
		case ch <- msg:
		default:
			logger.Debug("Surface already has a pending refresh", "surface", name)
		}
	}
}

// Close closes every subscriber channel. Later invalidations are ignored.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	for name, ch := range d.subs {
		close(ch)
		delete(d.subs, name)
	}
}
