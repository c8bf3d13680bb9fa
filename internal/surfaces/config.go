package surfaces

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/sipwait/internal/constants"
	"github.com/julianstephens/sipwait/internal/logger"
)

// Surface is one configured display of the timer. Each surface refreshes on
// its own interval and never writes to the store.
type Surface struct {
	Name    string
	Kind    constants.SurfaceKind
	Refresh time.Duration
}

type Config struct {
	Surfaces []Surface
}

type yamlSurface struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Refresh string `yaml:"refresh"`
}

type yamlConfig struct {
	Surfaces []yamlSurface `yaml:"surfaces"`
}

// DefaultConfig returns one surface of each kind.
func DefaultConfig() Config {
	return Config{Surfaces: []Surface{
		{Name: "main", Kind: constants.SurfaceMain, Refresh: time.Second},
		{Name: "widget-small", Kind: constants.SurfaceWidgetSmall, Refresh: time.Minute},
		{Name: "widget-medium", Kind: constants.SurfaceWidgetMedium, Refresh: 15 * time.Minute},
		{Name: "complication", Kind: constants.SurfaceComplication, Refresh: 15 * time.Minute},
	}}
}

// LoadConfig reads surface definitions from path. A missing file yields the
// defaults. Entries that cannot be used are skipped with a warning; if none
// survive the defaults are used.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("read surfaces file: %w", err)
	}
	return ParseConfig(raw)
}

func ParseConfig(raw []byte) (Config, error) {
	var fileData yamlConfig
	if err := yaml.Unmarshal(raw, &fileData); err != nil {
		return DefaultConfig(), fmt.Errorf("parse surfaces yaml: %w", err)
	}

	var cfg Config
	seen := make(map[string]bool)
	for i, entry := range fileData.Surfaces {
		s, err := entry.toSurface()
		if err != nil {
			logger.Warn("Skipping surface", "index", i, "name", entry.Name, "error", err)
			continue
		}
		if seen[s.Name] {
			logger.Warn("Skipping duplicate surface", "name", s.Name)
			continue
		}
		seen[s.Name] = true
		cfg.Surfaces = append(cfg.Surfaces, s)
	}

	if len(cfg.Surfaces) == 0 {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

func (y yamlSurface) toSurface() (Surface, error) {
	if y.Name == "" {
		return Surface{}, errors.New("name is required")
	}
	kind := constants.SurfaceKind(y.Kind)
	if !ValidKind(kind) {
		return Surface{}, fmt.Errorf("unknown kind %q", y.Kind)
	}

	refresh := defaultRefresh(kind)
	if y.Refresh != "" {
		d, err := time.ParseDuration(y.Refresh)
		if err != nil {
			return Surface{}, fmt.Errorf("invalid refresh %q: %w", y.Refresh, err)
		}
		if d <= 0 {
			return Surface{}, fmt.Errorf("refresh must be positive, got %s", d)
		}
		refresh = d
	}
	return Surface{Name: y.Name, Kind: kind, Refresh: refresh}, nil
}

func ValidKind(kind constants.SurfaceKind) bool {
	switch kind {
	case constants.SurfaceMain, constants.SurfaceWidgetSmall,
		constants.SurfaceWidgetMedium, constants.SurfaceComplication:
		return true
	}
	return false
}

func defaultRefresh(kind constants.SurfaceKind) time.Duration {
	for _, s := range DefaultConfig().Surfaces {
		if s.Kind == kind {
			return s.Refresh
		}
	}
	return time.Minute
}

// Find returns the surface named name.
func (c Config) Find(name string) (Surface, bool) {
	for _, s := range c.Surfaces {
		if s.Name == name {
			return s, true
		}
	}
	return Surface{}, false
}
