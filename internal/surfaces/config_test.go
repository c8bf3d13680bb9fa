package surfaces

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/sipwait/internal/constants"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "surfaces.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if len(cfg.Surfaces) != 4 {
		t.Fatalf("got %d surfaces, want 4 defaults", len(cfg.Surfaces))
	}

	want := map[string]time.Duration{
		"main":          time.Second,
		"widget-small":  time.Minute,
		"widget-medium": 15 * time.Minute,
		"complication":  15 * time.Minute,
	}
	for name, refresh := range want {
		s, ok := cfg.Find(name)
		if !ok {
			t.Errorf("default surface %q missing", name)
			continue
		}
		if s.Refresh != refresh {
			t.Errorf("%s refresh = %s, want %s", name, s.Refresh, refresh)
		}
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surfaces.yaml")
	content := `surfaces:
  - name: desk
    kind: main
    refresh: 5s
  - name: watch
    kind: complication
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if len(cfg.Surfaces) != 2 {
		t.Fatalf("got %d surfaces, want 2", len(cfg.Surfaces))
	}

	desk, _ := cfg.Find("desk")
	if desk.Kind != constants.SurfaceMain || desk.Refresh != 5*time.Second {
		t.Errorf("desk = %+v", desk)
	}
	watch, _ := cfg.Find("watch")
	if watch.Refresh != 15*time.Minute {
		t.Errorf("watch refresh = %s, want kind default 15m", watch.Refresh)
	}
}

func TestParseConfig_DropsInvalidEntries(t *testing.T) {
	raw := []byte(`surfaces:
  - name: ok
    kind: widget-small
  - name: bad-kind
    kind: hologram
  - kind: main
  - name: bad-refresh
    kind: main
    refresh: soon
  - name: negative
    kind: main
    refresh: -1m
  - name: ok
    kind: main
`)

	cfg, err := ParseConfig(raw)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if len(cfg.Surfaces) != 1 || cfg.Surfaces[0].Name != "ok" {
		t.Errorf("surfaces = %+v, want only the first valid entry", cfg.Surfaces)
	}
}

func TestParseConfig_AllInvalidFallsBackToDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("surfaces:\n  - name: x\n    kind: nope\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Surfaces) != len(DefaultConfig().Surfaces) {
		t.Errorf("expected defaults, got %+v", cfg.Surfaces)
	}
}

func TestParseConfig_MalformedYAML(t *testing.T) {
	cfg, err := ParseConfig([]byte("surfaces: [unterminated"))
	if err == nil {
		t.Error("expected parse error")
	}
	if len(cfg.Surfaces) == 0 {
		t.Error("expected defaults alongside the error")
	}
}
