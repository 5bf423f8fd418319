package lighting

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Material is a flat surface: base colour as 0xRRGGBB, opacity and a
// multiplier on the rig's specular strength.
type Material struct {
	Name     string  `yaml:"name"`
	Color    uint32  `yaml:"color"`
	Alpha    float32 `yaml:"alpha,omitempty"`
	Specular float32 `yaml:"specular,omitempty"`
}

// RGBA returns the colour as bytes. Alpha 0 in the definition means opaque.
func (m Material) RGBA() (r, g, b, a uint8) {
	alpha := m.Alpha
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	return uint8(m.Color >> 16), uint8(m.Color >> 8), uint8(m.Color), uint8(alpha*255 + 0.5)
}

// Transparent reports whether the material needs alpha blending.
func (m Material) Transparent() bool {
	return m.Alpha > 0 && m.Alpha < 1
}

//go:embed materials.yaml
var materialsYAML []byte

var (
	materialsOnce sync.Once
	materials     map[string]Material
	materialsErr  error
)

// ParseMaterials decodes a YAML list of materials keyed by name.
func ParseMaterials(data []byte) (map[string]Material, error) {
	var list []Material
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode materials: %w", err)
	}
	out := make(map[string]Material, len(list))
	for _, m := range list {
		if m.Name == "" {
			return nil, fmt.Errorf("decode materials: entry without name")
		}
		if m.Specular == 0 {
			m.Specular = 1
		}
		out[m.Name] = m
	}
	return out, nil
}

// MaterialFor returns the named built-in material, or "default".
func MaterialFor(name string) Material {
	materialsOnce.Do(func() {
		materials, materialsErr = ParseMaterials(materialsYAML)
	})
	if materialsErr != nil {
		panic(materialsErr)
	}
	if m, ok := materials[name]; ok {
		return m
	}
	return materials["default"]
}
