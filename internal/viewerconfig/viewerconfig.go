package viewerconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"runway/internal/layout"
)

// ConfigPath is the path to the viewer preferences file, relative to the process working directory.
const ConfigPath = "config/runway.json"

// Environment overrides, usually set through .env.
const (
	EnvPreset = "RUNWAY_PRESET"
	EnvSeed   = "RUNWAY_SEED"
)

// Prefs holds viewer preferences (debug overlays, grid, layout preset and seed). Persisted across runs with cmd save.
type Prefs struct {
	ShowFPS      bool   `json:"show_fps"`
	ShowMemAlloc bool   `json:"show_memalloc"`
	GridVisible  bool   `json:"grid_visible"`
	Preset       string `json:"preset,omitempty"`
	Seed         int64  `json:"seed,omitempty"`
}

// Default returns default preferences: overlays and grid off, the parametric preset, a random seed.
func Default() Prefs {
	return Prefs{
		Preset: layout.DefaultPreset,
	}
}

// Load reads preferences from ConfigPath. A missing file yields Default() and no error;
// an unreadable or invalid file yields Default() and the error so the caller can log it.
func Load() (Prefs, error) {
	return LoadFrom(ConfigPath)
}

// LoadFrom is Load for an explicit path.
func LoadFrom(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read prefs: %w", err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", path, err)
	}
	if p.Preset == "" {
		p.Preset = layout.DefaultPreset
	}
	return p, nil
}

// Save writes preferences to ConfigPath, creating the config directory if needed.
func Save(p Prefs) error {
	return SaveTo(ConfigPath, p)
}

// SaveTo is Save for an explicit path.
func SaveTo(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}

// ApplyEnv overrides Preset and Seed from RUNWAY_PRESET and RUNWAY_SEED when set.
// An unparsable seed is reported and leaves Seed unchanged.
func (p *Prefs) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvPreset); v != "" {
		p.Preset = v
	}
	v := getenv(EnvSeed)
	if v == "" {
		return nil
	}
	seed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", EnvSeed, err)
	}
	p.Seed = seed
	return nil
}
