package layout

// Kind is the primitive mesh a descriptor is drawn with.
type Kind string

const (
	Box      Kind = "box"
	Cylinder Kind = "cylinder"
)

// Category groups descriptors by generation rule and visual role.
type Category string

const (
	Runway        Category = "runway"
	Structure     Category = "structure"
	Overhead      Category = "overhead"
	Underground   Category = "underground"
	Connector     Category = "connector"
	Strut         Category = "strut"
	Central       Category = "central"
	RunwayStyle   Category = "runway_style"
	ThinStructure Category = "thin_structure"
	Image         Category = "image"
	Platform      Category = "platform"
)

// Categories lists every known category in declaration order.
var Categories = []Category{
	Runway, Structure, Overhead, Underground, Connector, Strut,
	Central, RunwayStyle, ThinStructure, Image, Platform,
}

// Known reports whether c is one of Categories.
func (c Category) Known() bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// Descriptor fully specifies one placed primitive. Box dimensions are
// (width, height, depth); cylinder dimensions are (radius, height).
// Rotation is Euler XYZ in radians. Group names the rule that produced it.
type Descriptor struct {
	Kind       Kind
	Dimensions []float32
	Position   [3]float32
	Rotation   [3]float32
	Category   Category
	Group      string
}

// Size returns the world-space extents of the primitive before rotation.
// A cylinder of radius r and height h occupies (2r, h, 2r).
func (d Descriptor) Size() [3]float32 {
	switch d.Kind {
	case Cylinder:
		if len(d.Dimensions) < 2 {
			return [3]float32{}
		}
		r, h := d.Dimensions[0], d.Dimensions[1]
		return [3]float32{2 * r, h, 2 * r}
	default:
		var s [3]float32
		copy(s[:], d.Dimensions)
		return s
	}
}

// Top returns the Y of the descriptor's upper face, ignoring rotation.
func (d Descriptor) Top() float32 {
	return d.Position[1] + d.Size()[1]*0.5
}

// Animated reports whether per-frame drift applies to this descriptor.
func (d Descriptor) Animated() bool {
	return d.Category != Runway
}
