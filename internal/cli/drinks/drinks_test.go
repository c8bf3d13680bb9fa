package drinks

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/sipwait/internal/cli"
	"github.com/julianstephens/sipwait/internal/constants"
	"github.com/julianstephens/sipwait/internal/notifier"
	"github.com/julianstephens/sipwait/internal/recorder"
	"github.com/julianstephens/sipwait/internal/storage"
	"github.com/julianstephens/sipwait/internal/storage/sqlite"
	"github.com/julianstephens/sipwait/internal/surfaces"
	"github.com/julianstephens/sipwait/internal/timer"
)

var testNow = time.Date(2026, 2, 14, 15, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init storage: %v", err)
	}

	ctx := cli.NewContext(store, surfaces.DefaultConfig(), notifier.New(),
		recorder.WithClock(recorder.ClockFunc(func() time.Time { return testNow })))

	cleanup := func() {
		ctx.Dispatcher.Close()
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}
	return ctx, cleanup
}

func TestDrinkCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	for i := 0; i < 2; i++ {
		if err := (&DrinkCmd{}).Run(ctx); err != nil {
			t.Fatalf("drink command failed: %v", err)
		}
	}

	state := storage.LoadState(ctx.Store)
	if state.DrinkCount != 2 {
		t.Errorf("DrinkCount = %d, want 2", state.DrinkCount)
	}
	if state.LastDrinkTime == nil || !state.LastDrinkTime.Equal(testNow) {
		t.Errorf("LastDrinkTime = %v, want %v", state.LastDrinkTime, testNow)
	}

	// Notifications default to on, so exactly one alert is pending.
	n, ok, err := ctx.Scheduler.Pending(constants.ReadyNotificationID)
	if err != nil || !ok {
		t.Fatalf("Pending() = (%v, %v)", ok, err)
	}
	if !n.FireAt.Equal(testNow.Add(time.Hour)) {
		t.Errorf("FireAt = %v, want %v", n.FireAt, testNow.Add(time.Hour))
	}
}

func TestResetCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&DrinkCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&ResetCmd{}).Run(ctx); err != nil {
		t.Fatalf("reset command failed: %v", err)
	}

	state := storage.LoadState(ctx.Store)
	if state.LastDrinkTime != nil {
		t.Error("expected last drink to be cleared")
	}
	if state.DrinkCount != 1 {
		t.Errorf("DrinkCount = %d, want 1", state.DrinkCount)
	}
	if _, ok, _ := ctx.Scheduler.Pending(constants.ReadyNotificationID); ok {
		t.Error("expected pending alert to be cancelled")
	}
}

func TestResetCountCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&DrinkCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&ResetCountCmd{}).Run(ctx); err != nil {
		t.Fatalf("reset-count command failed: %v", err)
	}

	state := storage.LoadState(ctx.Store)
	if state.DrinkCount != 0 {
		t.Errorf("DrinkCount = %d, want 0", state.DrinkCount)
	}
	if state.LastDrinkTime == nil {
		t.Error("reset-count must keep the cooldown")
	}
}

func TestStatusCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	for _, cmd := range []*StatusCmd{{}, {JSON: true}} {
		if err := cmd.Run(ctx); err != nil {
			t.Errorf("status command (json=%v) failed: %v", cmd.JSON, err)
		}
	}
}

func TestNewStatusJSON(t *testing.T) {
	last := testNow.Add(-20 * time.Minute)
	snap := timer.Snapshot{
		LastDrinkTime:      &last,
		DelayMinutes:       60,
		DrinkCount:         3,
		FormattedRemaining: "40m",
		Remaining:          40 * time.Minute,
		Progress:           1.0 / 3.0,
		ReadyAt:            last.Add(time.Hour),
	}

	out := newStatusJSON(snap)
	if out.CanDrink || out.Remaining != "40m" || out.RemainingSeconds != 2400 {
		t.Errorf("unexpected status: %+v", out)
	}
	if out.ReadyAt == nil || !out.ReadyAt.Equal(last.Add(time.Hour)) {
		t.Errorf("ReadyAt = %v", out.ReadyAt)
	}

	ready := newStatusJSON(timer.Snapshot{CanDrink: true, FormattedRemaining: "Ready!"})
	if ready.ReadyAt != nil || ready.LastDrinkTime != nil {
		t.Errorf("ready status should omit timestamps: %+v", ready)
	}
}

func TestHistoryCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&HistoryCmd{}).Run(ctx); err != nil {
		t.Fatalf("history on empty store failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := (&DrinkCmd{}).Run(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if err := (&HistoryCmd{Limit: 2}).Run(ctx); err != nil {
		t.Fatalf("history command failed: %v", err)
	}

	events, err := ctx.Store.GetDrinkEvents(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 {
		t.Errorf("got %d drink events, want 3", len(events))
	}
}
