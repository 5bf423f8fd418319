package layout

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPreset is the preset used when none is configured.
const DefaultPreset = "parametric"

// ErrUnknownPreset is returned by Preset for names not in PresetNames.
var ErrUnknownPreset = errors.New("unknown layout preset")

//go:embed presets/*.yaml
var presetFS embed.FS

var (
	presetOnce sync.Once
	presets    map[string]Config
	presetErr  error
)

func loadPresets() {
	presets = make(map[string]Config)
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		presetErr = err
		return
	}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		data, err := presetFS.ReadFile("presets/" + e.Name())
		if err != nil {
			presetErr = err
			return
		}
		cfg, err := Parse(data)
		if err != nil {
			presetErr = fmt.Errorf("preset %s: %w", e.Name(), err)
			return
		}
		if cfg.Name == "" {
			cfg.Name = strings.TrimSuffix(e.Name(), ".yaml")
		}
		presets[cfg.Name] = cfg
	}
}

// Parse decodes a YAML layout config and validates it.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode layout: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Preset returns a copy of the named built-in config. The copy is deep, so
// callers may retune it without affecting later lookups.
func Preset(name string) (Config, error) {
	presetOnce.Do(loadPresets)
	if presetErr != nil {
		return Config{}, presetErr
	}
	src, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q (have %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	var out Config
	if err := copier.CopyWithOption(&out, &src, copier.Option{DeepCopy: true}); err != nil {
		return Config{}, fmt.Errorf("copy preset %q: %w", name, err)
	}
	return out, nil
}

// MustPreset is Preset for built-in names known at compile time.
func MustPreset(name string) Config {
	cfg, err := Preset(name)
	if err != nil {
		panic(err)
	}
	return cfg
}

// PresetNames lists the built-in presets in sorted order.
func PresetNames() []string {
	presetOnce.Do(loadPresets)
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
