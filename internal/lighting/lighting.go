package lighting

import (
	"github.com/chewxy/math32"
)

// MaxLocalLights is how many spot/point lights the lit shader accepts.
const MaxLocalLights = 4

// Color is linear RGB in 0..1.
type Color [3]float32

// White is full-intensity white.
var White = Color{1, 1, 1}

// Local is a point light, or a spot light when Angle > 0. Distance 0 means
// unbounded; Decay is the falloff exponent within Distance.
type Local struct {
	Position  [3]float32
	Direction [3]float32 // spot only, towards the lit area
	Angle     float32    // spot half-angle in radians
	Penumbra  float32    // fraction of Angle that is softened
	Distance  float32
	Decay     float32
	Intensity float32
	Color     Color
}

// Spot reports whether the light is a cone.
func (l Local) Spot() bool {
	return l.Angle > 0
}

// ConeCos returns cos of the inner and outer cone edges. Point lights return
// (-1, -1) so every direction is inside the cone.
func (l Local) ConeCos() (inner, outer float32) {
	if !l.Spot() {
		return -1, -1
	}
	outer = math32.Cos(l.Angle)
	inner = math32.Cos(l.Angle * (1 - l.Penumbra))
	return inner, outer
}

// Rig is the scene lighting: an ambient term, one directional light, local
// lights and linear fog.
type Rig struct {
	Ambient              float32
	AmbientColor         Color
	Directional          [3]float32 // light position; it shines towards the origin
	DirectionalIntensity float32
	DirectionalColor     Color
	Locals               []Local
	Background           Color
	FogNear              float32
	FogFar               float32
	SpecularPower        float32
	SpecularStrength     float32
}

// RunwayRig is the runway lighting: strong overhead key light, two spots over
// the runway and two soft point lights either side of the walk line.
func RunwayRig() Rig {
	return Rig{
		Ambient:              0.6,
		AmbientColor:         Color{0.55, 0.58, 0.66},
		Directional:          [3]float32{5, 80, 5},
		DirectionalIntensity: 1.5,
		DirectionalColor:     White,
		Locals: []Local{
			{Position: [3]float32{0, 30, 0}, Direction: [3]float32{0, -1, 0}, Angle: math32.Pi / 6, Penumbra: 0.1, Distance: 100, Decay: 1.5, Intensity: 1, Color: White},
			{Position: [3]float32{-20, 20, -10}, Direction: [3]float32{0, -1, 0}, Angle: math32.Pi / 8, Penumbra: 0.2, Distance: 80, Decay: 1.5, Intensity: 0.8, Color: White},
			{Position: [3]float32{0, 15, 2}, Intensity: 0.5, Color: White},
			{Position: [3]float32{0, 15, -2}, Intensity: 0.5, Color: White},
		},
		Background:       Color{0, 0, 0},
		FogNear:          50,
		FogFar:           150,
		SpecularPower:    48,
		SpecularStrength: 0.35,
	}
}

// LightDir returns the normalized direction from the origin towards the
// directional light, as the shader expects.
func (r Rig) LightDir() [3]float32 {
	d := r.Directional
	l := math32.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	if l == 0 {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{d[0] / l, d[1] / l, d[2] / l}
}

// ActiveLocals returns at most MaxLocalLights local lights.
func (r Rig) ActiveLocals() []Local {
	if len(r.Locals) > MaxLocalLights {
		return r.Locals[:MaxLocalLights]
	}
	return r.Locals
}

// Attenuation evaluates a local light's distance falloff at dist, matching the
// shader: 1 inside Distance scaled by (1 - dist/Distance)^Decay, 0 beyond.
func (l Local) Attenuation(dist float32) float32 {
	if l.Distance <= 0 {
		return 1
	}
	if dist >= l.Distance {
		return 0
	}
	decay := l.Decay
	if decay <= 0 {
		decay = 1
	}
	return math32.Pow(1-dist/l.Distance, decay)
}

// FogFactor is the share of the fog colour at view distance dist.
func (r Rig) FogFactor(dist float32) float32 {
	if r.FogFar <= r.FogNear {
		return 0
	}
	f := (dist - r.FogNear) / (r.FogFar - r.FogNear)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
