package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/sipwait/internal/timer"
)

func TestDetails(t *testing.T) {
	ready := timer.Snapshot{CanDrink: true, DrinkCount: 2, DelayMinutes: 60, NotificationsEnabled: true}
	if got, want := Details(ready), "2 drinks · every 60m · alerts on"; got != want {
		t.Errorf("Details() = %q, want %q", got, want)
	}

	waiting := timer.Snapshot{DrinkCount: 1, DelayMinutes: 30, ReadyAt: time.Now().Add(10 * time.Minute)}
	if got := Details(waiting); !strings.Contains(got, "alerts off") || !strings.Contains(got, "ready at") {
		t.Errorf("Details() = %q, want alerts off and ready time", got)
	}
}

func TestRender(t *testing.T) {
	out := Render(timer.Snapshot{FormattedRemaining: "42m", DelayMinutes: 60, Progress: 0.3}, 40)
	if !strings.Contains(out, "42m") || !strings.Contains(out, "sipwait") {
		t.Errorf("Render() = %q", out)
	}
}
