package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeViewer struct {
	preset  string
	seeds   []int64
	paused  bool
	grid    bool
	fps     bool
	mem     bool
	shown   bool
	saved   int
	saveErr error
}

func (f *fakeViewer) Rebuild(preset string, seed int64) error {
	if preset != "" {
		if preset != "parametric" && preset != "balanced" {
			return errors.New("unknown layout preset: " + preset)
		}
		f.preset = preset
	}
	f.seeds = append(f.seeds, seed)
	return nil
}
func (f *fakeViewer) PresetName() string { return f.preset }
func (f *fakeViewer) PresetNames() []string { return []string{"balanced", "parametric"} }
func (f *fakeViewer) SetPaused(p bool) { f.paused = p }
func (f *fakeViewer) SetGridVisible(v bool) { f.grid = v }
func (f *fakeViewer) SetShowFPS(v bool) { f.fps = v }
func (f *fakeViewer) SetShowMemAlloc(v bool) { f.mem = v }
func (f *fakeViewer) Select() { f.shown = true }
func (f *fakeViewer) Dismiss() { f.shown = false }
func (f *fakeViewer) Stats() map[string]int { return map[string]int{"runway": 1, "strut": 20} }
func (f *fakeViewer) Seed() int64 { return 42 }
func (f *fakeViewer) Laps() int { return 3 }
func (f *fakeViewer) Save() error {
	f.saved++
	return f.saveErr
}

func setup() (*Registry, *fakeViewer, *[]string) {
	r := NewRegistry()
	v := &fakeViewer{preset: "parametric"}
	var out []string
	RegisterViewer(r, v, func(s string) { out = append(out, s) })
	return r, v, &out
}

func run(t *testing.T, r *Registry, line string) error {
	t.Helper()
	args, ok := Parse(line)
	require.True(t, ok, line)
	return r.Execute(args)
}

func TestParse(t *testing.T) {
	args, ok := Parse("cmd grid --show")
	assert.True(t, ok)
	assert.Equal(t, []string{"grid", "--show"}, args)

	args, ok = Parse("cmd   ")
	assert.True(t, ok)
	assert.Nil(t, args)

	_, ok = Parse("hello runway")
	assert.False(t, ok)
	_, ok = Parse("CMD grid")
	assert.False(t, ok)
}

func TestExecuteErrors(t *testing.T) {
	r, _, _ := setup()
	assert.EqualError(t, r.Execute(nil), "missing subcommand")
	err := r.Execute([]string{"fly"})
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Error(t, r.Execute([]string{"grid", "--bogus"}))
}

func TestRegen(t *testing.T) {
	r, v, out := setup()
	require.NoError(t, run(t, r, "cmd regen --seed 42"))
	require.NoError(t, run(t, r, "cmd regen"))
	assert.Equal(t, []int64{42, 0}, v.seeds, "seed flag resets between runs")
	assert.Equal(t, "regenerated parametric layout", (*out)[0])
}

func TestPreset(t *testing.T) {
	r, v, _ := setup()
	require.NoError(t, run(t, r, "cmd preset --seed 7 balanced"))
	assert.Equal(t, "balanced", v.preset)
	assert.Equal(t, []int64{7}, v.seeds)

	assert.Error(t, run(t, r, "cmd preset nope"))
	assert.Equal(t, "balanced", v.preset)
	assert.ErrorContains(t, run(t, r, "cmd preset"), "balanced, parametric")
}

func TestToggles(t *testing.T) {
	r, v, _ := setup()
	require.NoError(t, run(t, r, "cmd grid --show"))
	require.NoError(t, run(t, r, "cmd fps --show"))
	require.NoError(t, run(t, r, "cmd memalloc --show"))
	assert.True(t, v.grid && v.fps && v.mem)

	require.NoError(t, run(t, r, "cmd grid --hide"))
	assert.False(t, v.grid)
	assert.True(t, v.fps, "other toggles untouched")

	assert.Error(t, run(t, r, "cmd grid"))
	assert.Error(t, run(t, r, "cmd grid --show --hide"))
}

func TestPauseSelectSave(t *testing.T) {
	r, v, out := setup()
	require.NoError(t, run(t, r, "cmd pause"))
	assert.True(t, v.paused)
	require.NoError(t, run(t, r, "cmd resume"))
	assert.False(t, v.paused)

	require.NoError(t, run(t, r, "cmd select"))
	assert.True(t, v.shown)
	require.NoError(t, run(t, r, "cmd close"))
	assert.False(t, v.shown)

	require.NoError(t, run(t, r, "cmd save"))
	assert.Equal(t, 1, v.saved)
	assert.Contains(t, *out, "preferences saved")

	v.saveErr = errors.New("disk full")
	assert.EqualError(t, run(t, r, "cmd save"), "disk full")
}

func TestStatsAndHelp(t *testing.T) {
	r, _, out := setup()
	require.NoError(t, run(t, r, "cmd stats"))
	assert.Equal(t, []string{"preset parametric seed 42 laps 3", "runway: 1", "strut: 20", "total: 21"}, *out)

	*out = nil
	require.NoError(t, run(t, r, "cmd help"))
	assert.Len(t, *out, len(r.Names()))
	assert.Contains(t, *out, "cmd regen [--seed N]")
}
