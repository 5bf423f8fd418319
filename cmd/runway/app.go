package main

import (
	"time"

	"runway/internal/debug"
	"runway/internal/layout"
	"runway/internal/logger"
	"runway/internal/scene"
	"runway/internal/showcase"
	"runway/internal/viewerconfig"
)

// app is the commands.Viewer the console drives.
type app struct {
	log    *logger.Logger
	prefs  viewerconfig.Prefs
	scn    *scene.Scene
	dbg    *debug.Debug
	preset string
}

// resolveSeed turns the "random" seed 0 into a concrete one so the log
// records how to reproduce a layout.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func newApp(log *logger.Logger, prefs viewerconfig.Prefs) *app {
	a := &app{log: log, prefs: prefs, dbg: debug.New()}
	cfg, err := layout.Preset(prefs.Preset)
	if err != nil {
		log.Logf("%v; using %s", err, layout.DefaultPreset)
		a.prefs.Preset = layout.DefaultPreset
		cfg = layout.MustPreset(layout.DefaultPreset)
	}
	a.preset = a.prefs.Preset
	seed := resolveSeed(prefs.Seed)
	a.scn = scene.New(cfg, seed)
	a.scn.GridVisible = prefs.GridVisible
	a.scn.Selection.OnSelect = func(m showcase.ModelInfo) {
		log.Logf("selected %s", m.Title())
	}
	a.dbg.SetShowFPS(prefs.ShowFPS)
	a.dbg.SetShowMemAlloc(prefs.ShowMemAlloc)
	a.logLayout(seed)
	return a
}

func (a *app) logLayout(seed int64) {
	a.log.Logf("layout %s seed %d: %d structures", a.preset, seed, len(a.scn.Structures()))
}

func (a *app) Rebuild(preset string, seed int64) error {
	if preset == "" {
		preset = a.preset
	}
	cfg, err := layout.Preset(preset)
	if err != nil {
		return err
	}
	seed = resolveSeed(seed)
	a.scn.Rebuild(cfg, seed)
	a.preset = preset
	a.prefs.Preset = preset
	a.logLayout(seed)
	return nil
}

func (a *app) PresetName() string {
	return a.preset
}

func (a *app) PresetNames() []string {
	return layout.PresetNames()
}

func (a *app) SetPaused(paused bool) {
	a.scn.Paused = paused
	a.dbg.Status = ""
	if paused {
		a.dbg.Status = "PAUSED"
	}
}

func (a *app) SetGridVisible(visible bool) {
	a.scn.GridVisible = visible
	a.prefs.GridVisible = visible
}

func (a *app) SetShowFPS(show bool) {
	a.dbg.SetShowFPS(show)
	a.prefs.ShowFPS = show
}

func (a *app) SetShowMemAlloc(show bool) {
	a.dbg.SetShowMemAlloc(show)
	a.prefs.ShowMemAlloc = show
}

func (a *app) Select() {
	a.scn.Selection.Select(showcase.Model)
}

func (a *app) Dismiss() {
	a.scn.Selection.Dismiss()
}

func (a *app) Stats() map[string]int {
	return layout.CountGroups(a.scn.Structures())
}

func (a *app) Seed() int64 {
	return a.scn.Seed()
}

func (a *app) Laps() int {
	return a.scn.Laps()
}

func (a *app) Save() error {
	return viewerconfig.Save(a.prefs)
}
