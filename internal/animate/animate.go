package animate

import (
	"math"

	"runway/internal/layout"

	"github.com/chewxy/math32"
)

// Default tuning, per rendered frame or per second of elapsed time.
const (
	DefaultWalkStep       = float32(0.0008)
	DefaultBobAmplitude   = float32(0.05)
	DefaultBobFrequency   = float32(2)
	DefaultLegAmplitude   = float32(0.2)
	DefaultLegFrequency   = float32(2)
	DefaultDriftTimeScale = float32(0.3)
	DefaultDriftAmplitude = float32(0.0002)
)

// Config holds the animator constants. Walk translation is driven by frame
// ticks; bobbing, leg swing and drift are driven by elapsed wall-clock time.
type Config struct {
	WalkStep       float32
	RunwayStart    float32
	RunwayLength   float32
	BaseY          float32
	BobAmplitude   float32
	BobFrequency   float32
	LegAmplitude   float32
	LegFrequency   float32
	DriftTimeScale float32
	DriftAmplitude float32
}

// ConfigForRunway derives the walk line from the runway descriptor: the walk
// spans the runway's length minus margin at each end, and the baseline is the
// runway's top surface.
func ConfigForRunway(runway layout.Descriptor, margin float32) Config {
	size := runway.Size()
	length := size[0] - 2*margin
	return Config{
		WalkStep:       DefaultWalkStep,
		RunwayStart:    runway.Position[0] - length*0.5,
		RunwayLength:   length,
		BaseY:          runway.Top(),
		BobAmplitude:   DefaultBobAmplitude,
		BobFrequency:   DefaultBobFrequency,
		LegAmplitude:   DefaultLegAmplitude,
		LegFrequency:   DefaultLegFrequency,
		DriftTimeScale: DefaultDriftTimeScale,
		DriftAmplitude: DefaultDriftAmplitude,
	}
}

// WalkState is the sawtooth walk progress. It counts frame ticks and wraps to
// zero on the tick where progress would reach 1, so the wrap point is exact.
type WalkState struct {
	Tick int
	Laps int
}

// Progress returns the walk progress in [0, 1).
func (w WalkState) Progress(step float32) float32 {
	return float32(w.Tick) * step
}

// Step advances one frame tick and reports whether the walk wrapped.
func (w *WalkState) Step(step float32) bool {
	w.Tick++
	if w.Tick >= TicksPerLap(step) {
		w.Tick = 0
		w.Laps++
		return true
	}
	return false
}

// TicksPerLap is the number of ticks after which progress reaches 1.
func TicksPerLap(step float32) int {
	if step <= 0 {
		return math.MaxInt
	}
	inv := 1 / float64(step)
	// float32(0.0008) is slightly below 0.0008; a step that is 1/n up to
	// representation error still takes exactly n ticks.
	if n := math.Round(inv); math.Abs(n*float64(step)-1) < 1e-5 {
		return int(n)
	}
	return int(math.Ceil(inv))
}

// State is everything the animator mutates: the walk and one accumulated
// drift rotation per layout descriptor. It is owned by the render loop.
type State struct {
	Walk    WalkState
	drift   [][3]float32
	descs   []layout.Descriptor
	elapsed float32
}

// NewState builds animation state for the given layout.
func NewState(descs []layout.Descriptor) *State {
	return &State{
		drift: make([][3]float32, len(descs)),
		descs: descs,
	}
}

// Drift returns the accumulated drift of descriptor i.
func (s *State) Drift(i int) [3]float32 {
	return s.drift[i]
}

// Rotation returns descriptor i's generated rotation plus its drift.
func (s *State) Rotation(i int) [3]float32 {
	r := s.descs[i].Rotation
	d := s.drift[i]
	return [3]float32{r[0] + d[0], r[1] + d[1], r[2] + d[2]}
}

// Len is the number of descriptors the state was built for.
func (s *State) Len() int {
	return len(s.descs)
}

// Elapsed is the wall-clock time passed to the last Advance.
func (s *State) Elapsed() float32 {
	return s.elapsed
}

// Pose is the humanoid transform for one frame.
type Pose struct {
	Position [3]float32
	LeftLeg  float32
	RightLeg float32
	Progress float32
	Wrapped  bool
}

// Animator applies the per-frame update rules.
type Animator struct {
	cfg Config
}

// New returns an animator with the given constants.
func New(cfg Config) *Animator {
	return &Animator{cfg: cfg}
}

// Advance runs one frame: one walk tick, then the time-driven bob, leg swing
// and structure drift at elapsed seconds. Calling it with a state not built by
// NewState is a programming error and panics.
func (a *Animator) Advance(st *State, elapsed float32) Pose {
	if st == nil || st.drift == nil || len(st.drift) != len(st.descs) {
		panic("animate: Advance on uninitialized state")
	}
	wrapped := st.Walk.Step(a.cfg.WalkStep)
	p := a.PoseAt(st.Walk, elapsed)
	p.Wrapped = wrapped
	a.drift(st, elapsed)
	st.elapsed = elapsed
	return p
}

// PoseAt computes the humanoid pose for a walk state and time without
// advancing anything.
func (a *Animator) PoseAt(w WalkState, elapsed float32) Pose {
	progress := w.Progress(a.cfg.WalkStep)
	swing := a.LegSwing(elapsed)
	return Pose{
		Position: [3]float32{
			a.cfg.RunwayStart + progress*a.cfg.RunwayLength,
			a.cfg.BaseY + a.cfg.BobAmplitude*math32.Sin(elapsed*a.cfg.BobFrequency),
			0,
		},
		LeftLeg:  swing,
		RightLeg: -swing,
		Progress: progress,
	}
}

// LegSwing is the signed swing of the left leg at elapsed seconds.
func (a *Animator) LegSwing(elapsed float32) float32 {
	return a.cfg.LegAmplitude * math32.Sin(elapsed*a.cfg.LegFrequency)
}

// DriftDelta is the per-frame rotation increment for a structure at pos.
// Underground structures drift the opposite way.
func (a *Animator) DriftDelta(cat layout.Category, pos [3]float32, elapsed float32) (dx, dz float32) {
	t := elapsed * a.cfg.DriftTimeScale
	f := a.cfg.DriftAmplitude
	if cat == layout.Underground {
		f = -f
	}
	return math32.Sin(t+pos[0]) * f, math32.Cos(t+pos[2]) * f
}

func (a *Animator) drift(st *State, elapsed float32) {
	for i, d := range st.descs {
		if !d.Animated() {
			continue
		}
		dx, dz := a.DriftDelta(d.Category, d.Position, elapsed)
		st.drift[i][0] += dx
		st.drift[i][2] += dz
	}
}
