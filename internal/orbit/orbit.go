package orbit

import (
	"github.com/chewxy/math32"
)

// Config holds orbit camera limits and speeds. Angles are radians; Damping is
// the fraction of pending motion applied per Update (0 disables damping).
type Config struct {
	Target      [3]float32
	Position    [3]float32
	Fovy        float32
	Near        float32
	Far         float32
	Damping     float32
	MinDistance float32
	MaxDistance float32
	MinPolar    float32
	MaxPolar    float32
	EnablePan   bool
	PanSpeed    float32
	RotateSpeed float32
	ZoomSpeed   float32
}

// RunwayConfig is the camera rig used by the runway viewer.
func RunwayConfig() Config {
	return Config{
		Target:      [3]float32{0, 12, 0},
		Position:    [3]float32{-40, 45, 0},
		Fovy:        40,
		Near:        0.1,
		Far:         1000,
		Damping:     0.05,
		MinDistance: 25,
		MaxDistance: 120,
		MinPolar:    math32.Pi / 2.5,
		MaxPolar:    math32.Pi / 1.6,
		EnablePan:   true,
		PanSpeed:    0.5,
		RotateSpeed: 1,
		ZoomSpeed:   1,
	}
}

const polarEpsilon = 1e-6

const (
	defaultNear = 0.01
	defaultFar  = 1000
)

// Controller orbits a camera around a target. Input methods queue motion;
// Update applies it with damping and clamps distance and polar angle.
type Controller struct {
	cfg    Config
	target [3]float32
	radius float32
	theta  float32 // azimuth around +Y, measured from +Z
	phi    float32 // polar angle from +Y

	dTheta float32
	dPhi   float32
	scale  float32
	pan    [3]float32
}

// New places the controller at cfg.Position looking at cfg.Target.
func New(cfg Config) *Controller {
	c := &Controller{cfg: cfg, target: cfg.Target, scale: 1}
	off := sub(cfg.Position, cfg.Target)
	c.radius = length(off)
	if c.radius > 0 {
		c.theta = math32.Atan2(off[0], off[2])
		c.phi = math32.Acos(clamp(off[1]/c.radius, -1, 1))
	}
	c.clamp()
	return c
}

// Rotate queues a drag of dx, dy pixels on a viewport of the given height.
func (c *Controller) Rotate(dx, dy, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	k := 2 * math32.Pi * c.speed(c.cfg.RotateSpeed) / viewportHeight
	c.dTheta -= dx * k
	c.dPhi -= dy * k
}

// Zoom queues a wheel move; positive moves closer.
func (c *Controller) Zoom(wheel float32) {
	if wheel == 0 {
		return
	}
	c.scale *= math32.Pow(0.95, wheel*c.speed(c.cfg.ZoomSpeed))
}

// Pan queues a screen-space drag of dx, dy pixels, moving the target with the view.
func (c *Controller) Pan(dx, dy, viewportHeight float32) {
	if !c.cfg.EnablePan || viewportHeight <= 0 {
		return
	}
	pos := c.Position()
	fwd := normalize(sub(c.target, pos))
	right := normalize(cross(fwd, [3]float32{0, 1, 0}))
	up := cross(right, fwd)
	// World units per pixel at the target distance.
	halfFov := c.cfg.Fovy * 0.5 * math32.Pi / 180
	unit := 2 * length(sub(pos, c.target)) * math32.Tan(halfFov) / viewportHeight * c.speed(c.cfg.PanSpeed)
	for i := 0; i < 3; i++ {
		c.pan[i] += -right[i]*dx*unit + up[i]*dy*unit
	}
}

// Update applies queued motion. With damping, only a fraction of the pending
// rotation and pan is applied and the rest decays over later frames.
func (c *Controller) Update() {
	f := c.cfg.Damping
	if f <= 0 || f > 1 {
		f = 1
	}
	c.theta += c.dTheta * f
	c.phi += c.dPhi * f
	for i := range c.pan {
		c.target[i] += c.pan[i] * f
	}
	c.radius *= c.scale
	c.scale = 1
	c.clamp()
	if f == 1 {
		c.dTheta, c.dPhi, c.pan = 0, 0, [3]float32{}
		return
	}
	c.dTheta *= 1 - f
	c.dPhi *= 1 - f
	for i := range c.pan {
		c.pan[i] *= 1 - f
	}
}

func (c *Controller) clamp() {
	lo, hi := c.cfg.MinPolar, c.cfg.MaxPolar
	if hi <= 0 || hi > math32.Pi {
		hi = math32.Pi
	}
	c.phi = clamp(c.phi, max(lo, polarEpsilon), min(hi, math32.Pi-polarEpsilon))
	if c.cfg.MinDistance > 0 && c.radius < c.cfg.MinDistance {
		c.radius = c.cfg.MinDistance
	}
	if c.cfg.MaxDistance > 0 && c.radius > c.cfg.MaxDistance {
		c.radius = c.cfg.MaxDistance
	}
}

// Position returns the camera position.
func (c *Controller) Position() [3]float32 {
	sp := math32.Sin(c.phi)
	return [3]float32{
		c.target[0] + c.radius*sp*math32.Sin(c.theta),
		c.target[1] + c.radius*math32.Cos(c.phi),
		c.target[2] + c.radius*sp*math32.Cos(c.theta),
	}
}

// Target returns the point the camera looks at.
func (c *Controller) Target() [3]float32 {
	return c.target
}

// Distance returns the camera's distance to the target.
func (c *Controller) Distance() float32 {
	return c.radius
}

// Polar returns the polar angle from +Y.
func (c *Controller) Polar() float32 {
	return c.phi
}

// Config returns the controller config.
func (c *Controller) Config() Config {
	return c.cfg
}

// ClipPlanes returns the near and far clip distances, falling back to
// defaultNear and defaultFar for unset values.
func (c *Controller) ClipPlanes() (near, far float64) {
	near, far = float64(c.cfg.Near), float64(c.cfg.Far)
	if near <= 0 {
		near = defaultNear
	}
	if far <= near {
		far = defaultFar
	}
	return near, far
}

func (c *Controller) speed(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func length(v [3]float32) float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func normalize(v [3]float32) [3]float32 {
	l := length(v)
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
