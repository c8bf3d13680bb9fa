package widget

import (
	"strings"
	"testing"

	"github.com/julianstephens/sipwait/internal/timer"
)

func TestRenderSmall(t *testing.T) {
	out := RenderSmall(timer.Snapshot{FormattedRemaining: "1h 5m", DrinkCount: 3})
	for _, want := range []string{"1h 5m", "3 today"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderSmall() missing %q in %q", want, out)
		}
	}
}

func TestRenderMedium(t *testing.T) {
	out := RenderMedium(timer.Snapshot{FormattedRemaining: "12m", DrinkCount: 1, DelayMinutes: 45, Progress: 0.5})
	for _, want := range []string{"12m", "1 drinks", "every 45m"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderMedium() missing %q in %q", want, out)
		}
	}
}
