package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRunwayFirst(t *testing.T) {
	for _, name := range PresetNames() {
		cfg := MustPreset(name)
		descs := Generate(cfg, NewRand(7))
		require.NotEmpty(t, descs, name)
		rw := descs[0]
		assert.Equal(t, Runway, rw.Category, name)
		assert.Equal(t, Box, rw.Kind, name)
		assert.Equal(t, cfg.Runway.Size[:], rw.Dimensions, name)
		assert.Equal(t, cfg.Runway.Position, rw.Position, name)
		assert.Equal(t, [3]float32{}, rw.Rotation, name)
		assert.Len(t, descs, cfg.Total(), name)
	}
}

func TestGeneratePositiveDimensions(t *testing.T) {
	for _, name := range PresetNames() {
		cfg := MustPreset(name)
		for seed := int64(1); seed <= 20; seed++ {
			for _, d := range Generate(cfg, NewRand(seed)) {
				want := 3
				if d.Kind == Cylinder {
					want = 2
				}
				require.Len(t, d.Dimensions, want, "%s/%s", name, d.Group)
				for _, v := range d.Dimensions {
					assert.Greater(t, v, float32(0), "%s/%s", name, d.Group)
				}
			}
		}
	}
}

func TestGenerateClampsBadDimensions(t *testing.T) {
	cfg := Config{
		Runway: RunwaySpec{Size: [3]float32{10, 1, 2}},
		Groups: []GroupRule{{
			Name: "flat", Category: Platform, Kind: Box, Count: 3,
			Dims: []Range{Fixed(1), Fixed(0), Between(-2, -1)},
		}},
	}
	for _, d := range Generate(cfg, NewRand(1))[1:] {
		for _, v := range d.Dimensions {
			assert.Greater(t, v, float32(0))
		}
	}
}

func TestBalancedCounts(t *testing.T) {
	cfg := MustPreset("balanced")
	descs := Generate(cfg, NewRand(3))
	groups := CountGroups(descs)
	assert.Equal(t, 15, groups["structure-left"])
	assert.Equal(t, 15, groups["structure-right"])
	assert.Equal(t, 1, groups["runway"])
	assert.Equal(t, cfg.Counts(), groups)
	assert.Equal(t, 30, CountCategories(descs)[Structure])
}

func TestParametricCounts(t *testing.T) {
	descs := Generate(MustPreset("parametric"), NewRand(11))
	cats := CountCategories(descs)
	assert.Equal(t, 1, cats[Runway])
	assert.Equal(t, 30, cats[Structure])
	assert.Equal(t, 30, cats[Overhead])
	assert.Equal(t, 30, cats[Underground])
	assert.Equal(t, 20, cats[Connector])
	assert.Equal(t, 20, cats[Strut])
	assert.Len(t, descs, 131)
}

func TestGenerateRanges(t *testing.T) {
	descs := Generate(MustPreset("parametric"), NewRand(5))
	left, strut := 0, 0
	for _, d := range descs {
		switch d.Group {
		case "structure-left":
			assert.InDelta(t, 2+float32(left)*2, d.Position[1], 1e-5)
			assert.GreaterOrEqual(t, d.Position[0], float32(-40))
			assert.LessOrEqual(t, d.Position[0], float32(-25))
			assert.Equal(t, float32(0.2), d.Dimensions[1])
			left++
		case "strut":
			assert.InDelta(t, -50+float32(strut)*4, d.Position[0], 1e-5)
			assert.InDelta(t, 5+d.Dimensions[1]/2, d.Position[1], 1e-5)
			assert.Zero(t, d.Rotation[1])
			assert.InDelta(t, 0, d.Rotation[0], 0.1)
			strut++
		case "connector":
			assert.InDelta(t, -5+d.Dimensions[1]/2, d.Position[1], 1e-5)
		case "underground":
			assert.Less(t, d.Position[1], float32(-9.99))
		}
	}
	assert.Equal(t, 20, left)
	assert.Equal(t, 20, strut)
}

func TestGenerateSeeded(t *testing.T) {
	cfg := MustPreset("gallery")
	a := Generate(cfg, NewRand(42))
	b := Generate(cfg, NewRand(42))
	c := Generate(cfg, NewRand(43))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestDescriptorSize(t *testing.T) {
	cyl := Descriptor{Kind: Cylinder, Dimensions: []float32{0.5, 4}, Position: [3]float32{0, 2, 0}}
	assert.Equal(t, [3]float32{1, 4, 1}, cyl.Size())
	assert.Equal(t, float32(4), cyl.Top())
	box := Descriptor{Kind: Box, Dimensions: []float32{100, 2.5, 6}, Position: [3]float32{0, 6.25, 0}, Category: Runway}
	assert.Equal(t, [3]float32{100, 2.5, 6}, box.Size())
	assert.Equal(t, float32(7.5), box.Top())
	assert.False(t, box.Animated())
}

func TestParseScalar(t *testing.T) {
	v, err := ParseScalar("0.5pi")
	require.NoError(t, err)
	assert.InDelta(t, 1.5707963, v, 1e-6)
	v, err = ParseScalar("pi")
	require.NoError(t, err)
	assert.InDelta(t, 3.1415926, v, 1e-6)
	v, err = ParseScalar("-pi")
	require.NoError(t, err)
	assert.InDelta(t, -3.1415926, v, 1e-6)
	v, err = ParseScalar(" -2.5 ")
	require.NoError(t, err)
	assert.Equal(t, float32(-2.5), v)
	_, err = ParseScalar("tau")
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	src := `
runway: {size: [10, 1, 2], position: [0, 0.5, 0]}
walk_margin: 1
groups:
  - name: posts
    category: strut
    kind: cylinder
    count: 4
    dims: [0.1, [2, 3]]
    position: [{range: -3, step: 2}, {range: 0, dim: 1, dim_scale: 0.5}, 0]
    rotation: [0, [0, 2pi], 0]
`
	cfg, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, cfg.Groups, 1)
	g := cfg.Groups[0]
	assert.Equal(t, Fixed(0.1), g.Dims[0])
	assert.Equal(t, Between(2, 3), g.Dims[1])
	assert.Equal(t, float32(2), g.Position[0].Step)
	assert.Equal(t, 1, g.Position[1].Dim)
	assert.Equal(t, Fixed(0), g.Position[2].Range)
	assert.InDelta(t, 6.2831853, g.Rotation[1].Max, 1e-6)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Runway:     RunwaySpec{Size: [3]float32{10, 1, 2}},
			WalkMargin: 1,
			Groups: []GroupRule{{
				Name: "a", Category: Structure, Kind: Box, Count: 1,
				Dims: []Range{Fixed(1), Fixed(1), Fixed(1)},
			}},
		}
	}
	require.NoError(t, base().Validate())

	cases := map[string]func(*Config){
		"zero runway":    func(c *Config) { c.Runway.Size[1] = 0 },
		"huge margin":    func(c *Config) { c.WalkMargin = 5 },
		"negative dim":   func(c *Config) { c.Groups[0].Dims[0] = Between(-1, 1) },
		"wrong dims":     func(c *Config) { c.Groups[0].Kind = Cylinder },
		"bad category":   func(c *Config) { c.Groups[0].Category = "tower" },
		"runway group":   func(c *Config) { c.Groups[0].Category = Runway },
		"negative count": func(c *Config) { c.Groups[0].Count = -1 },
		"duplicate":      func(c *Config) { c.Groups = append(c.Groups, c.Groups[0]) },
		"bad dim ref":    func(c *Config) { c.Groups[0].Position[1] = AxisRule{Dim: 3, DimScale: 1} },
		"inverted":       func(c *Config) { c.Groups[0].Rotation[2] = Between(1, 0) },
	}
	for name, mutate := range cases {
		cfg := base()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, name)
	}
}

func TestPresetIsCopy(t *testing.T) {
	a := MustPreset("balanced")
	a.Groups[0].Count = 99
	a.Groups[0].Dims[0] = Fixed(1)
	b := MustPreset("balanced")
	assert.Equal(t, 15, b.Groups[0].Count)
	assert.Equal(t, Between(5, 20), b.Groups[0].Dims[0])
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("brutalist")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Equal(t, []string{"balanced", "gallery", "parametric"}, PresetNames())
}
