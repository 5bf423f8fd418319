package animate

import (
	"math"
	"testing"

	"runway/internal/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runway(length float32) layout.Descriptor {
	return layout.Descriptor{
		Kind:       layout.Box,
		Dimensions: []float32{length, 2.5, 6},
		Position:   [3]float32{0, 6.25, 0},
		Category:   layout.Runway,
		Group:      "runway",
	}
}

func TestTicksPerLap(t *testing.T) {
	assert.Equal(t, 1250, TicksPerLap(0.0008))
	assert.Equal(t, 4, TicksPerLap(0.25))
	assert.Equal(t, 3, TicksPerLap(0.4))
	assert.Equal(t, 4, TicksPerLap(0.3))
	assert.Equal(t, 10000, TicksPerLap(0.0001))
	assert.Equal(t, 5000, TicksPerLap(0.0002))
}

func TestWalkProgressNeverReachesOne(t *testing.T) {
	for _, step := range []float32{0.0008, 0.0002, 0.0001, 0.3} {
		var w WalkState
		laps := TicksPerLap(step)
		for i := 0; i < 2*laps; i++ {
			w.Step(step)
			require.Less(t, w.Progress(step), float32(1), "step=%v i=%d", step, i)
		}
		assert.Equal(t, 2, w.Laps, "step=%v", step)
		assert.Zero(t, w.Tick, "step=%v", step)
	}
}

func TestWalkWrapsExactlyOnce(t *testing.T) {
	var w WalkState
	wraps := 0
	for i := 0; i < 1250; i++ {
		if w.Step(0.0008) {
			wraps++
			assert.Equal(t, 1249, i)
		}
	}
	assert.Equal(t, 1, wraps)
	assert.Equal(t, 1, w.Laps)
	assert.Zero(t, w.Progress(0.0008))
}

func TestWalkProgressIsModulo(t *testing.T) {
	const s = float32(0.0008)
	var w WalkState
	for n := 1; n <= 4000; n++ {
		w.Step(s)
		want := math.Mod(float64(n)*float64(s), 1)
		if want > 1-1e-6 {
			want = 0
		}
		require.InDelta(t, want, float64(w.Progress(s)), 1e-5, "n=%d", n)
		require.GreaterOrEqual(t, w.Progress(s), float32(0))
		require.Less(t, w.Progress(s), float32(1))
	}
}

func TestHumanoidCentreAtHalfway(t *testing.T) {
	const L = float32(90)
	a := New(Config{WalkStep: 0.0008, RunwayStart: -L / 2, RunwayLength: L, BaseY: 7.5})
	p := a.PoseAt(WalkState{Tick: 625}, 0)
	assert.InDelta(t, 0, p.Position[0], 1e-4)
	assert.InDelta(t, 0.5, p.Progress, 1e-6)
	assert.Equal(t, float32(7.5), p.Position[1])
}

func TestConfigForRunway(t *testing.T) {
	cfg := ConfigForRunway(runway(100), 5)
	assert.Equal(t, float32(-45), cfg.RunwayStart)
	assert.Equal(t, float32(90), cfg.RunwayLength)
	assert.Equal(t, float32(7.5), cfg.BaseY)
	assert.Equal(t, DefaultWalkStep, cfg.WalkStep)
}

func TestHumanoidXMonotonicWithinLap(t *testing.T) {
	a := New(ConfigForRunway(runway(100), 5))
	st := NewState([]layout.Descriptor{runway(100)})
	prev := a.PoseAt(st.Walk, 0).Position[0]
	resets := 0
	for i := 0; i < 3000; i++ {
		p := a.Advance(st, float32(i)/60)
		if p.Wrapped {
			resets++
			assert.Equal(t, float32(-45), p.Position[0])
		} else {
			assert.GreaterOrEqual(t, p.Position[0], prev)
		}
		prev = p.Position[0]
	}
	assert.Equal(t, 2, resets)
}

func TestLegsOpposite(t *testing.T) {
	a := New(ConfigForRunway(runway(100), 5))
	for i := 0; i < 500; i++ {
		p := a.PoseAt(WalkState{}, float32(i)*0.037)
		assert.Equal(t, p.LeftLeg, -p.RightLeg)
		assert.LessOrEqual(t, math.Abs(float64(p.LeftLeg)), 0.2+1e-6)
	}
}

func TestBobbing(t *testing.T) {
	a := New(ConfigForRunway(runway(100), 5))
	for i := 0; i < 200; i++ {
		y := a.PoseAt(WalkState{}, float32(i)*0.1).Position[1]
		assert.InDelta(t, 7.5, y, 0.05+1e-6)
	}
}

func TestDrift(t *testing.T) {
	descs := []layout.Descriptor{
		runway(100),
		{Kind: layout.Box, Dimensions: []float32{1, 1, 1}, Position: [3]float32{1, 2, 3}, Category: layout.Overhead},
		{Kind: layout.Box, Dimensions: []float32{1, 1, 1}, Position: [3]float32{1, 2, 3}, Category: layout.Underground, Rotation: [3]float32{0.5, 1, 0}},
	}
	a := New(ConfigForRunway(descs[0], 5))
	st := NewState(descs)
	for i := 0; i < 10; i++ {
		a.Advance(st, float32(i)*0.016)
	}
	assert.Equal(t, [3]float32{}, st.Drift(0))
	over, under := st.Drift(1), st.Drift(2)
	assert.NotZero(t, over[0])
	assert.NotZero(t, over[2])
	assert.Zero(t, over[1])
	assert.InDelta(t, over[0], -under[0], 1e-9)
	assert.InDelta(t, over[2], -under[2], 1e-9)

	rot := st.Rotation(2)
	assert.InDelta(t, 0.5+under[0], rot[0], 1e-7)
	assert.Equal(t, float32(1), rot[1])
	assert.InDelta(t, 0.144, st.Elapsed(), 1e-6)
}

func TestDriftDelta(t *testing.T) {
	a := New(ConfigForRunway(runway(100), 5))
	dx, dz := a.DriftDelta(layout.Structure, [3]float32{0, 0, 0}, 0)
	assert.InDelta(t, 0, dx, 1e-9)
	assert.InDelta(t, 0.0002, dz, 1e-9)
	dx, dz = a.DriftDelta(layout.Underground, [3]float32{0, 0, 0}, 0)
	assert.InDelta(t, 0, dx, 1e-9)
	assert.InDelta(t, -0.0002, dz, 1e-9)
}

func TestAdvanceUninitializedPanics(t *testing.T) {
	a := New(ConfigForRunway(runway(100), 5))
	assert.Panics(t, func() { a.Advance(nil, 0) })
	assert.Panics(t, func() { a.Advance(&State{}, 0) })
}

func TestAdvanceFullLayout(t *testing.T) {
	cfg := layout.MustPreset(layout.DefaultPreset)
	descs := layout.Generate(cfg, layout.NewRand(9))
	a := New(ConfigForRunway(descs[0], cfg.WalkMargin))
	st := NewState(descs)
	require.Equal(t, len(descs), st.Len())
	p := a.Advance(st, 0.5)
	assert.InDelta(t, -45+0.0008*90, p.Position[0], 1e-4)
}
