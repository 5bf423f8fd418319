package commands

import (
	"fmt"
	"sort"
	"strings"
)

// Viewer is what the console commands drive. The runway app implements it
// over the scene, the debug overlay and the saved preferences.
type Viewer interface {
	// Rebuild regenerates the layout from the named preset ("" = current) and seed (0 = time-based).
	Rebuild(preset string, seed int64) error
	PresetName() string
	PresetNames() []string
	SetPaused(paused bool)
	SetGridVisible(visible bool)
	SetShowFPS(show bool)
	SetShowMemAlloc(show bool)
	Select()
	Dismiss()
	Stats() map[string]int
	// Seed is the concrete seed of the current layout.
	Seed() int64
	// Laps counts completed walk cycles since the last rebuild.
	Laps() int
	Save() error
}

// RegisterViewer adds the runway console commands to r. Output lines go to out.
func RegisterViewer(r *Registry, v Viewer, out func(string)) {
	regen := NewFlagSet("regen")
	seed := regen.Int64("seed", 0, "layout seed (0 = random)")
	r.Register("regen", "cmd regen [--seed N]", regen, func() error {
		if err := v.Rebuild("", *seed); err != nil {
			return err
		}
		out(fmt.Sprintf("regenerated %s layout", v.PresetName()))
		return nil
	})

	preset := NewFlagSet("preset")
	presetSeed := preset.Int64("seed", 0, "layout seed (0 = random)")
	r.Register("preset", "cmd preset [--seed N] <name>", preset, func() error {
		if preset.NArg() != 1 {
			return fmt.Errorf("usage: cmd preset <name>; presets: %s", strings.Join(v.PresetNames(), ", "))
		}
		if err := v.Rebuild(preset.Arg(0), *presetSeed); err != nil {
			return err
		}
		out("preset " + v.PresetName())
		return nil
	})

	r.Register("pause", "cmd pause", nil, func() error {
		v.SetPaused(true)
		return nil
	})
	r.Register("resume", "cmd resume", nil, func() error {
		v.SetPaused(false)
		return nil
	})

	registerToggle(r, "grid", "grid", v.SetGridVisible)
	registerToggle(r, "fps", "FPS counter", v.SetShowFPS)
	registerToggle(r, "memalloc", "memory counter", v.SetShowMemAlloc)

	r.Register("select", "cmd select", nil, func() error {
		v.Select()
		return nil
	})
	r.Register("close", "cmd close", nil, func() error {
		v.Dismiss()
		return nil
	})

	r.Register("stats", "cmd stats", nil, func() error {
		out(fmt.Sprintf("preset %s seed %d laps %d", v.PresetName(), v.Seed(), v.Laps()))
		for _, line := range FormatStats(v.Stats()) {
			out(line)
		}
		return nil
	})

	r.Register("save", "cmd save", nil, func() error {
		if err := v.Save(); err != nil {
			return err
		}
		out("preferences saved")
		return nil
	})

	r.Register("help", "cmd help", nil, func() error {
		for _, name := range r.Names() {
			out(r.Usage(name))
		}
		return nil
	})
}

// registerToggle adds "cmd <name> --show|--hide".
func registerToggle(r *Registry, name, what string, set func(bool)) {
	fs := NewFlagSet(name)
	show := fs.Bool("show", false, "show the "+what)
	hide := fs.Bool("hide", false, "hide the "+what)
	r.Register(name, "cmd "+name+" --show|--hide", fs, func() error {
		switch {
		case *show && *hide:
			return fmt.Errorf("%s: use either --show or --hide", name)
		case *show:
			set(true)
		case *hide:
			set(false)
		default:
			return fmt.Errorf("usage: cmd %s --show|--hide", name)
		}
		return nil
	})
}

// FormatStats renders per-group counts as "group: n" lines sorted by group,
// followed by the total.
func FormatStats(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	total := 0
	for name, n := range counts {
		names = append(names, name)
		total += n
	}
	sort.Strings(names)
	out := make([]string, 0, len(names)+1)
	for _, name := range names {
		out = append(out, fmt.Sprintf("%s: %d", name, counts[name]))
	}
	return append(out, fmt.Sprintf("total: %d", total))
}
