package cli

import (
	"github.com/julianstephens/sipwait/internal/notifier"
	"github.com/julianstephens/sipwait/internal/recorder"
	"github.com/julianstephens/sipwait/internal/storage"
	"github.com/julianstephens/sipwait/internal/surfaces"
)

// Context is handed to every command. Store is only used directly for
// lifecycle and history; timer state changes go through Recorder.
type Context struct {
	Store      storage.Provider
	Recorder   *recorder.Recorder
	Dispatcher *surfaces.Dispatcher
	Surfaces   surfaces.Config
	Scheduler  *notifier.Scheduler
	Notifier   notifier.Sender
}

// NewContext wires the recorder to the persistent scheduler, the tray
// permission check and an in-process dispatcher.
func NewContext(store storage.Provider, cfg surfaces.Config, n *notifier.Notifier, opts ...recorder.Option) *Context {
	sched := notifier.NewScheduler(store)
	dispatcher := surfaces.NewDispatcher()

	base := []recorder.Option{
		recorder.WithScheduler(sched),
		recorder.WithPermissions(notifier.NewPermission(n)),
		recorder.WithDisplays(dispatcher),
	}
	rec := recorder.New(store, append(base, opts...)...)
	// Scheduling decisions use the same clock as the drinks they follow.
	sched.SetClock(rec.Now)

	return &Context{
		Store:      store,
		Recorder:   rec,
		Dispatcher: dispatcher,
		Surfaces:   cfg,
		Scheduler:  sched,
		Notifier:   n,
	}
}

// Reader is the read-only view of the store handed to surfaces.
func (c *Context) Reader() storage.Reader {
	return c.Store
}
