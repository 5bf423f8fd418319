package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid layout config")

// Config drives Generate. The runway is emitted first, then each group in order.
// WalkMargin is how far the humanoid's walk stops short of each runway end.
type Config struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Runway      RunwaySpec  `yaml:"runway"`
	WalkMargin  float32     `yaml:"walk_margin"`
	Groups      []GroupRule `yaml:"groups"`
}

// RunwaySpec is the fixed, non-random runway box.
type RunwaySpec struct {
	Size     [3]float32 `yaml:"size"`
	Position [3]float32 `yaml:"position"`
}

// Descriptor returns the runway descriptor.
func (r RunwaySpec) Descriptor() Descriptor {
	return Descriptor{
		Kind:       Box,
		Dimensions: []float32{r.Size[0], r.Size[1], r.Size[2]},
		Position:   r.Position,
		Category:   Runway,
		Group:      string(Runway),
	}
}

// GroupRule places Count primitives of one category. Dims holds one range per
// dimension (3 for boxes, 2 for cylinders).
type GroupRule struct {
	Name     string      `yaml:"name"`
	Category Category    `yaml:"category"`
	Kind     Kind        `yaml:"kind"`
	Count    int         `yaml:"count"`
	Dims     []Range     `yaml:"dims"`
	Position [3]AxisRule `yaml:"position"`
	Rotation [3]Range    `yaml:"rotation"`
}

// Range is a closed uniform interval. Min == Max is a constant.
// In YAML it is written as a scalar or a one/two element sequence; each
// number may carry a "pi" suffix ("0.2pi", "pi").
type Range struct {
	Min float32
	Max float32
}

// Fixed returns the constant range v.
func Fixed(v float32) Range {
	return Range{Min: v, Max: v}
}

// Between returns the range [min, max].
func Between(min, max float32) Range {
	return Range{Min: min, Max: max}
}

// AxisRule computes one coordinate for the i-th primitive of a group:
// a uniform sample of Range, plus i*Step, plus Dimensions[Dim]*DimScale.
type AxisRule struct {
	Range    Range   `yaml:"range"`
	Step     float32 `yaml:"step,omitempty"`
	Dim      int     `yaml:"dim,omitempty"`
	DimScale float32 `yaml:"dim_scale,omitempty"`
}

// Axis returns an AxisRule with only a range.
func Axis(r Range) AxisRule {
	return AxisRule{Range: r}
}

// UnmarshalYAML accepts "1.5", "[1, 2]", "[0, 0.2pi]".
func (r *Range) UnmarshalYAML(n *yaml.Node) error {
	var vals []string
	switch n.Kind {
	case yaml.ScalarNode:
		vals = []string{n.Value}
	case yaml.SequenceNode:
		if len(n.Content) < 1 || len(n.Content) > 2 {
			return fmt.Errorf("line %d: range needs 1 or 2 values, got %d", n.Line, len(n.Content))
		}
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: range values must be scalars", c.Line)
			}
			vals = append(vals, c.Value)
		}
	default:
		return fmt.Errorf("line %d: range must be a scalar or sequence", n.Line)
	}
	lo, err := ParseScalar(vals[0])
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	hi := lo
	if len(vals) == 2 {
		if hi, err = ParseScalar(vals[1]); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
	}
	r.Min, r.Max = lo, hi
	return nil
}

// UnmarshalYAML accepts either the Range shorthand or the full mapping form.
func (a *AxisRule) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		a.Step, a.Dim, a.DimScale = 0, 0, 0
		return n.Decode(&a.Range)
	}
	type plain AxisRule
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*a = AxisRule(p)
	return nil
}

// ParseScalar parses a float with an optional "pi" multiplier suffix.
func ParseScalar(s string) (float32, error) {
	s = strings.TrimSpace(s)
	mul := 1.0
	if rest, ok := strings.CutSuffix(s, "pi"); ok {
		mul = math.Pi
		s = strings.TrimSpace(rest)
		switch s {
		case "":
			s = "1"
		case "-":
			s = "-1"
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return float32(v * mul), nil
}

// Total is the number of descriptors Generate returns for this config.
func (c Config) Total() int {
	n := 1
	for _, g := range c.Groups {
		if g.Count > 0 {
			n += g.Count
		}
	}
	return n
}

// Counts maps each group name (and "runway") to its configured count.
func (c Config) Counts() map[string]int {
	out := map[string]int{string(Runway): 1}
	for _, g := range c.Groups {
		out[g.Name] += max(g.Count, 0)
	}
	return out
}

// CountGroups tallies descriptors by group name.
func CountGroups(descs []Descriptor) map[string]int {
	out := make(map[string]int)
	for _, d := range descs {
		out[d.Group]++
	}
	return out
}

// CountCategories tallies descriptors by category.
func CountCategories(descs []Descriptor) map[Category]int {
	out := make(map[Category]int)
	for _, d := range descs {
		out[d.Category]++
	}
	return out
}

// Validate checks that the config can only produce positive dimensions and
// well-formed rules. Errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	for i, v := range c.Runway.Size {
		if v <= 0 {
			return fmt.Errorf("%w: runway size[%d] = %g", ErrInvalidConfig, i, v)
		}
	}
	if c.WalkMargin < 0 || 2*c.WalkMargin >= c.Runway.Size[0] {
		return fmt.Errorf("%w: walk margin %g does not fit runway length %g", ErrInvalidConfig, c.WalkMargin, c.Runway.Size[0])
	}
	seen := make(map[string]bool)
	for _, g := range c.Groups {
		if err := g.validate(); err != nil {
			return err
		}
		if seen[g.Name] {
			return fmt.Errorf("%w: duplicate group %q", ErrInvalidConfig, g.Name)
		}
		seen[g.Name] = true
	}
	return nil
}

func (g GroupRule) validate() error {
	if g.Name == "" {
		return fmt.Errorf("%w: group without name", ErrInvalidConfig)
	}
	if g.Category == Runway || !g.Category.Known() {
		return fmt.Errorf("%w: group %q: bad category %q", ErrInvalidConfig, g.Name, g.Category)
	}
	if g.Count < 0 {
		return fmt.Errorf("%w: group %q: negative count", ErrInvalidConfig, g.Name)
	}
	want := 0
	switch g.Kind {
	case Box:
		want = 3
	case Cylinder:
		want = 2
	default:
		return fmt.Errorf("%w: group %q: unknown kind %q", ErrInvalidConfig, g.Name, g.Kind)
	}
	if len(g.Dims) != want {
		return fmt.Errorf("%w: group %q: %s needs %d dims, got %d", ErrInvalidConfig, g.Name, g.Kind, want, len(g.Dims))
	}
	for i, d := range g.Dims {
		if d.Min <= 0 || d.Max < d.Min {
			return fmt.Errorf("%w: group %q: dim %d range [%g, %g] must be positive", ErrInvalidConfig, g.Name, i, d.Min, d.Max)
		}
	}
	for i, a := range g.Position {
		if a.Range.Max < a.Range.Min {
			return fmt.Errorf("%w: group %q: position axis %d is inverted", ErrInvalidConfig, g.Name, i)
		}
		if a.DimScale != 0 && (a.Dim < 0 || a.Dim >= want) {
			return fmt.Errorf("%w: group %q: position axis %d refers to dim %d", ErrInvalidConfig, g.Name, i, a.Dim)
		}
	}
	for i, r := range g.Rotation {
		if r.Max < r.Min {
			return fmt.Errorf("%w: group %q: rotation axis %d is inverted", ErrInvalidConfig, g.Name, i)
		}
	}
	return nil
}
