package surfaces

import (
	"time"

	"github.com/julianstephens/sipwait/internal/storage"
	"github.com/julianstephens/sipwait/internal/timer"
)

// Read is how every surface observes the timer: load through the read-only
// handle, then derive.
func Read(r storage.Reader, now time.Time) timer.Snapshot {
	return timer.Read(storage.LoadState(r), now)
}
