package layout

import (
	"time"

	"cogentcore.org/core/base/randx"
)

// minDimension replaces any non-positive sampled dimension so a badly tuned
// config still yields drawable primitives.
const minDimension = float32(0.01)

// NewRand returns a seeded random source for Generate.
// Seed 0 uses a time-based seed.
func NewRand(seed int64) randx.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return randx.NewSysRand(seed)
}

// Generate builds the structure list for one scene. The runway is always the
// first element; each group then contributes exactly Count descriptors, in
// config order. Dimensions are sampled first, then position (which may depend
// on the dimensions), then rotation. Structures are not checked for overlap.
//
// Every call draws fresh values from rnd, so a second call is a different
// layout and must replace the scene rather than be merged into it.
// A nil rnd uses the global source.
func Generate(cfg Config, rnd randx.Rand) []Descriptor {
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	out := make([]Descriptor, 0, cfg.Total())
	out = append(out, cfg.Runway.Descriptor())
	for _, g := range cfg.Groups {
		for i := 0; i < g.Count; i++ {
			out = append(out, g.sample(i, rnd))
		}
	}
	return out
}

func (g GroupRule) sample(i int, rnd randx.Rand) Descriptor {
	dims := make([]float32, len(g.Dims))
	for k, r := range g.Dims {
		v := r.Sample(rnd)
		if v <= 0 {
			v = minDimension
		}
		dims[k] = v
	}
	d := Descriptor{
		Kind:       g.Kind,
		Dimensions: dims,
		Category:   g.Category,
		Group:      g.Name,
	}
	for a, rule := range g.Position {
		d.Position[a] = rule.Sample(i, dims, rnd)
	}
	for a, r := range g.Rotation {
		d.Rotation[a] = r.Sample(rnd)
	}
	return d
}

// Sample draws uniformly from the range. A constant range consumes no randomness.
func (r Range) Sample(rnd randx.Rand) float32 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rnd.Float32()*(r.Max-r.Min)
}

// Sample computes the coordinate for index i of a group given its sampled dimensions.
func (a AxisRule) Sample(i int, dims []float32, rnd randx.Rand) float32 {
	v := a.Range.Sample(rnd) + float32(i)*a.Step
	if a.DimScale != 0 && a.Dim >= 0 && a.Dim < len(dims) {
		v += dims[a.Dim] * a.DimScale
	}
	return v
}
