package surfaces

import (
	"testing"
	"time"
)

func TestDispatcher_FansOut(t *testing.T) {
	d := NewDispatcher()
	defer d.Close()

	main := d.Subscribe("main", 1)
	widget := d.Subscribe("widget-small", 1)

	d.InvalidateDisplays()

	for name, ch := range map[string]<-chan Invalidation{"main": main, "widget-small": widget} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Errorf("%s did not receive an invalidation", name)
		}
	}
}

func TestDispatcher_NeverBlocksOnFullSubscriber(t *testing.T) {
	d := NewDispatcher()
	defer d.Close()

	ch := d.Subscribe("main", 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			d.InvalidateDisplays()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("InvalidateDisplays blocked on a full subscriber")
	}
	if got := len(ch); got != 1 {
		t.Errorf("queued invalidations = %d, want 1", got)
	}
}

func TestDispatcher_ResubscribeClosesOldChannel(t *testing.T) {
	d := NewDispatcher()
	defer d.Close()

	old := d.Subscribe("main", 1)
	d.Subscribe("main", 1)

	if _, ok := <-old; ok {
		t.Error("expected replaced channel to be closed")
	}
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	defer d.Close()

	ch := d.Subscribe("main", 1)
	d.Unsubscribe("main")
	d.InvalidateDisplays()

	if _, ok := <-ch; ok {
		t.Error("expected unsubscribed channel to be closed without a value")
	}
}

func TestDispatcher_Close(t *testing.T) {
	d := NewDispatcher()
	ch := d.Subscribe("main", 1)

	d.Close()
	d.Close()
	d.InvalidateDisplays()

	if _, ok := <-ch; ok {
		t.Error("expected channel to be closed")
	}
	if _, ok := <-d.Subscribe("late", 1); ok {
		t.Error("subscribing after Close should return a closed channel")
	}
}
