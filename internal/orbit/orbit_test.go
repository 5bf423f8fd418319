package orbit

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestNewClampsPolar(t *testing.T) {
	c := New(RunwayConfig())
	// Starting above the allowed band, the camera is pushed down to MinPolar.
	assert.InDelta(t, math32.Pi/2.5, c.Polar(), 1e-5)
	assert.InDelta(t, 51.86, c.Distance(), 0.01)
	assert.Equal(t, [3]float32{0, 12, 0}, c.Target())
	pos := c.Position()
	assert.Less(t, pos[0], float32(0))
	assert.InDelta(t, 0, pos[2], 1e-3)
}

func TestZoomLimits(t *testing.T) {
	c := New(RunwayConfig())
	for i := 0; i < 200; i++ {
		c.Zoom(1)
		c.Update()
	}
	assert.InDelta(t, 25, c.Distance(), 1e-4)
	for i := 0; i < 200; i++ {
		c.Zoom(-1)
		c.Update()
	}
	assert.InDelta(t, 120, c.Distance(), 1e-4)
}

func TestRotatePolarLimits(t *testing.T) {
	c := New(RunwayConfig())
	for i := 0; i < 500; i++ {
		c.Rotate(0, -50, 800)
		c.Update()
	}
	assert.InDelta(t, math32.Pi/1.6, c.Polar(), 1e-5)
	for i := 0; i < 500; i++ {
		c.Rotate(0, 50, 800)
		c.Update()
	}
	assert.InDelta(t, math32.Pi/2.5, c.Polar(), 1e-5)
}

func TestDampingDecays(t *testing.T) {
	cfg := RunwayConfig()
	c := New(cfg)
	before := c.Position()
	c.Rotate(100, 0, 800)
	c.Update()
	first := c.Position()
	for i := 0; i < 400; i++ {
		c.Update()
	}
	settled := c.Position()
	c.Update()
	assert.NotEqual(t, before, first)
	assert.InDelta(t, settled[0], c.Position()[0], 1e-4)
	assert.InDelta(t, settled[2], c.Position()[2], 1e-4)
	// Distance is unaffected by rotation.
	assert.InDelta(t, New(cfg).Distance(), c.Distance(), 1e-3)
}

func TestNoDampingAppliesImmediately(t *testing.T) {
	cfg := RunwayConfig()
	cfg.Damping = 0
	c := New(cfg)
	c.Rotate(200, 0, 800)
	c.Update()
	p := c.Position()
	c.Update()
	assert.Equal(t, p, c.Position())
}

func TestPan(t *testing.T) {
	cfg := RunwayConfig()
	cfg.Damping = 0
	c := New(cfg)
	c.Pan(0, 100, 800)
	c.Update()
	assert.NotEqual(t, cfg.Target, c.Target())

	cfg.EnablePan = false
	c = New(cfg)
	c.Pan(100, 100, 800)
	c.Update()
	assert.Equal(t, cfg.Target, c.Target())
}

func TestInvalidViewportIgnored(t *testing.T) {
	cfg := RunwayConfig()
	cfg.Damping = 0
	c := New(cfg)
	p := c.Position()
	c.Rotate(10, 10, 0)
	c.Pan(10, 10, 0)
	c.Zoom(0)
	c.Update()
	assert.Equal(t, p, c.Position())
}

func TestClipPlanes(t *testing.T) {
	near, far := New(RunwayConfig()).ClipPlanes()
	assert.InDelta(t, 0.1, near, 1e-7)
	assert.Equal(t, float64(1000), far)

	cfg := RunwayConfig()
	cfg.Near, cfg.Far = 0, 0
	near, far = New(cfg).ClipPlanes()
	assert.Equal(t, 0.01, near)
	assert.Equal(t, float64(1000), far)
}
