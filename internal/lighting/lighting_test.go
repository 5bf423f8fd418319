package lighting

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestRunwayRig(t *testing.T) {
	r := RunwayRig()
	assert.Len(t, r.ActiveLocals(), 4)
	d := r.LightDir()
	assert.InDelta(t, 1, math32.Sqrt(d[0]*d[0]+d[1]*d[1]+d[2]*d[2]), 1e-6)
	assert.Greater(t, d[1], float32(0.99))

	spots := 0
	for _, l := range r.Locals {
		if l.Spot() {
			spots++
		}
	}
	assert.Equal(t, 2, spots)
}

func TestConeCos(t *testing.T) {
	spot := Local{Angle: math32.Pi / 6, Penumbra: 0.1}
	inner, outer := spot.ConeCos()
	assert.InDelta(t, math32.Cos(math32.Pi/6), outer, 1e-6)
	assert.Greater(t, inner, outer)

	inner, outer = Local{}.ConeCos()
	assert.Equal(t, float32(-1), inner)
	assert.Equal(t, float32(-1), outer)
}

func TestAttenuation(t *testing.T) {
	l := Local{Distance: 100, Decay: 1.5}
	assert.Equal(t, float32(1), l.Attenuation(0))
	assert.Equal(t, float32(0), l.Attenuation(100))
	assert.InDelta(t, math32.Pow(0.5, 1.5), l.Attenuation(50), 1e-6)
	assert.Equal(t, float32(1), Local{}.Attenuation(1e6))
}

func TestFogFactor(t *testing.T) {
	r := RunwayRig()
	assert.Zero(t, r.FogFactor(10))
	assert.InDelta(t, 0.5, r.FogFactor(100), 1e-6)
	assert.Equal(t, float32(1), r.FogFactor(400))
	assert.Zero(t, Rig{}.FogFactor(10))
}

func TestActiveLocalsCapped(t *testing.T) {
	r := Rig{Locals: make([]Local, 6)}
	assert.Len(t, r.ActiveLocals(), MaxLocalLights)
}

func TestMaterials(t *testing.T) {
	head := MaterialFor("head")
	r, g, b, a := head.RGBA()
	assert.Equal(t, [4]uint8{0xf0, 0xd0, 0xb0, 255}, [4]uint8{r, g, b, a})
	assert.False(t, head.Transparent())

	over := MaterialFor("overhead")
	assert.True(t, over.Transparent())
	_, _, _, a = over.RGBA()
	assert.Equal(t, uint8(128), a)

	assert.Equal(t, "default", MaterialFor("no-such-surface").Name)
	assert.Equal(t, float32(1), MaterialFor("default").Specular)
}

func TestParseMaterialsRejectsNameless(t *testing.T) {
	_, err := ParseMaterials([]byte("- color: 0xffffff\n"))
	assert.Error(t, err)
}
