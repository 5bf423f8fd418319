package showcase

import "github.com/chewxy/math32"

// Shape is the primitive a figure part is drawn with.
type Shape string

const (
	ShapeCylinder Shape = "cylinder"
	ShapeSphere   Shape = "sphere"
)

// Part is one primitive of the humanoid placeholder in figure space. Scale is
// the world size of a unit primitive (diameter, height, diameter). Leg is -1
// or +1 for the left and right leg, 0 otherwise.
type Part struct {
	Name     string
	Material string
	Shape    Shape
	Offset   [3]float32
	Scale    [3]float32
	Leg      int
}

// Figure is the humanoid: a tapered body, a head and two legs.
var Figure = []Part{
	{Name: "body", Material: "body", Shape: ShapeCylinder, Offset: [3]float32{0, 0, 0}, Scale: [3]float32{0.35, 1, 0.35}},
	{Name: "head", Material: "head", Shape: ShapeSphere, Offset: [3]float32{0, 0.7, 0}, Scale: [3]float32{0.4, 0.4, 0.4}},
	{Name: "left-leg", Material: "legs", Shape: ShapeCylinder, Offset: [3]float32{0, -0.6, 0.1}, Scale: [3]float32{0.12, 0.7, 0.12}, Leg: -1},
	{Name: "right-leg", Material: "legs", Shape: ShapeCylinder, Offset: [3]float32{0, -0.6, -0.1}, Scale: [3]float32{0.12, 0.7, 0.12}, Leg: 1},
}

// FigureYaw turns the figure to face along +X, the walking direction.
const FigureYaw = -math32.Pi / 2

// LegRotation is the X rotation of p for the given leg angles.
func (p Part) LegRotation(left, right float32) float32 {
	switch p.Leg {
	case -1:
		return left
	case 1:
		return right
	}
	return 0
}

// FigureBounds returns the centre offset and size of a box enclosing every
// part at rest, in figure space. The box is yaw-independent because it is
// widened to the larger horizontal extent.
func FigureBounds() (center, size [3]float32) {
	lo := [3]float32{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32}
	hi := [3]float32{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32}
	for _, p := range Figure {
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], p.Offset[i]-p.Scale[i]/2)
			hi[i] = max(hi[i], p.Offset[i]+p.Scale[i]/2)
		}
	}
	for i := 0; i < 3; i++ {
		center[i] = (lo[i] + hi[i]) / 2
		size[i] = hi[i] - lo[i]
	}
	w := max(size[0], size[2])
	size[0], size[2] = w, w
	center[0], center[2] = 0, 0
	return center, size
}
