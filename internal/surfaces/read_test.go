package surfaces

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/sipwait/internal/constants"
	"github.com/julianstephens/sipwait/internal/models"
	"github.com/julianstephens/sipwait/internal/storage/sqlite"
)

func TestRead(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "sipwait.db"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	err := store.SetMany(map[string]string{
		constants.StateLastDrinkTime: models.FormatTimestamp(now.Add(-15 * time.Minute)),
		constants.StateDelayMinutes:  "0",
		constants.StateDrinkCount:    "4",
	})
	if err != nil {
		t.Fatal(err)
	}

	snap := Read(store, now)
	if snap.CanDrink {
		t.Error("expected cooldown")
	}
	if snap.DelayMinutes != 60 {
		t.Errorf("DelayMinutes = %d, want 60 substituted for 0", snap.DelayMinutes)
	}
	if snap.FormattedRemaining != "45m" || snap.DrinkCount != 4 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestRead_UnopenedStoreYieldsDefaults(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "missing.db"))

	snap := Read(store, time.Now())
	if !snap.CanDrink || snap.DelayMinutes != constants.DefaultDelayMinutes {
		t.Errorf("snapshot = %+v, want default ready state", snap)
	}
}
