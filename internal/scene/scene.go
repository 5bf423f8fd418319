// Package scene wires the runway layout, animator, lighting rig and orbit
// camera into a per-frame Update/Draw pair.
package scene

import (
	"runway/internal/animate"
	"runway/internal/layout"
	"runway/internal/lighting"
	"runway/internal/orbit"
	"runway/internal/pick"
	"runway/internal/primitives"
	"runway/internal/showcase"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// clickSlop is how far (pixels) the pointer may move between press and
// release for the gesture to count as a click rather than a drag.
const clickSlop = 4

// Scene holds the generated layout, the animation state and the camera.
// Update runs input and animation; Draw renders between BeginMode3D and
// EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	Paused      bool
	Selection   showcase.Selection

	orbit *orbit.Controller
	rig   lighting.Rig
	reg   *primitives.Registry
	sky   skybox
	imgs  panels

	seed  int64
	descs []layout.Descriptor
	anim  *animate.Animator
	state *animate.State
	pose  animate.Pose

	pressPos rl.Vector2
	pressed  bool
}

// New returns a scene showing cfg generated from seed (0 = time-based).
// GPU resources are created on first Draw.
func New(cfg layout.Config, seed int64) *Scene {
	s := &Scene{
		orbit: orbit.New(orbit.RunwayConfig()),
		rig:   lighting.RunwayRig(),
		reg:   primitives.NewRegistry(),
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Projection = rl.CameraPerspective
	oc := s.orbit.Config()
	s.Camera.Fovy = oc.Fovy
	rl.SetClipPlanes(s.orbit.ClipPlanes())
	s.syncCamera()
	s.sky.locate()
	s.imgs.paths = findPanelImages()
	s.Rebuild(cfg, seed)
	return s
}

// Rebuild replaces the whole layout and animation state. Layouts are never
// merged; the walk restarts at the runway start.
func (s *Scene) Rebuild(cfg layout.Config, seed int64) {
	s.seed = seed
	s.descs = layout.Generate(cfg, layout.NewRand(seed))
	s.anim = animate.New(animate.ConfigForRunway(s.descs[0], cfg.WalkMargin))
	s.state = animate.NewState(s.descs)
	s.pose = s.anim.PoseAt(s.state.Walk, 0)
}

// Structures returns the current descriptor list, runway first. Callers must
// not modify it.
func (s *Scene) Structures() []layout.Descriptor {
	return s.descs
}

// Seed returns the seed passed to the last Rebuild.
func (s *Scene) Seed() int64 {
	return s.seed
}

// Laps is the number of completed walk cycles since the last Rebuild.
func (s *Scene) Laps() int {
	return s.state.Walk.Laps
}

// Update runs once per frame. When input is true the mouse drives the orbit
// camera (left drag rotates, wheel zooms, right drag pans) and a left click
// on the humanoid selects the model. The animator advances unless paused.
func (s *Scene) Update(input bool) {
	if input {
		s.handleInput()
	}
	s.orbit.Update()
	s.syncCamera()
	if !s.Paused {
		s.pose = s.anim.Advance(s.state, float32(rl.GetTime()))
	}
}

func (s *Scene) handleInput() {
	h := float32(rl.GetScreenHeight())
	delta := rl.GetMouseDelta()
	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		s.pressPos = mouse
		s.pressed = true
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		s.orbit.Rotate(delta.X, delta.Y, h)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) && s.pressed {
		s.pressed = false
		if rl.Vector2Distance(s.pressPos, mouse) <= clickSlop && s.HitModel(mouse) {
			s.Selection.Select(showcase.Model)
		}
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		s.orbit.Pan(delta.X, delta.Y, h)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.orbit.Zoom(wheel)
	}
}

// ModelBox is the humanoid's click region at its current pose.
func (s *Scene) ModelBox() pick.Box {
	off, size := showcase.FigureBounds()
	p := s.pose.Position
	return pick.BoxAround([3]float32{p[0] + off[0], p[1] + off[1], p[2] + off[2]}, size)
}

// HitModel reports whether the ray through screen point pt hits the humanoid.
func (s *Scene) HitModel(pt rl.Vector2) bool {
	ray := rl.GetScreenToWorldRay(pt, s.Camera)
	r := pick.Ray{
		Origin:    [3]float32{ray.Position.X, ray.Position.Y, ray.Position.Z},
		Direction: [3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z},
	}
	_, _, ok := pick.Nearest(r, []pick.Target{{Name: showcase.Model.Name, Box: s.ModelBox()}})
	return ok
}

func (s *Scene) syncCamera() {
	p, t := s.orbit.Position(), s.orbit.Target()
	s.Camera.Position = rl.NewVector3(p[0], p[1], p[2])
	s.Camera.Target = rl.NewVector3(t[0], t[1], t[2])
}

// Background is the clear colour of the lighting rig.
func (s *Scene) Background() rl.Color {
	b := s.rig.Background
	return rl.NewColor(uint8(b[0]*255), uint8(b[1]*255), uint8(b[2]*255), 255)
}

// Draw renders skybox, grid, structures and the humanoid.
func (s *Scene) Draw() {
	s.sky.ensureLoaded()
	s.imgs.ensureLoaded()
	rl.BeginMode3D(s.Camera)
	s.sky.draw(s.Camera)
	if s.GridVisible {
		drawGrid()
	}
	p := s.Camera.Position
	s.reg.SetView([3]float32{p.X, p.Y, p.Z}, s.rig)
	s.drawStructures()
	s.drawFigure()
	rl.EndMode3D()
}

// drawStructures draws opaque descriptors first so translucent overhead and
// underground slabs blend over them.
func (s *Scene) drawStructures() {
	for pass := 0; pass < 2; pass++ {
		img := -1
		for i, d := range s.descs {
			if d.Category == layout.Image {
				img++
			}
			mat := lighting.MaterialFor(string(d.Category))
			if mat.Transparent() != (pass == 1) {
				continue
			}
			rot := s.state.Rotation(i)
			if d.Category == layout.Image {
				if tex, ok := s.imgs.texture(img); ok {
					name := primitives.MeshFor(d.Kind)
					s.reg.DrawWithTexture(name, primitives.Transform(name, d.Position, rot, d.Size()), mat, tex)
					continue
				}
			}
			s.reg.DrawDescriptor(d, rot, mat)
		}
	}
}

// drawFigure draws the humanoid parts at the current pose, turned to face
// the walking direction.
func (s *Scene) drawFigure() {
	p := s.pose.Position
	group := rl.MatrixMultiply(rl.MatrixRotateY(showcase.FigureYaw), rl.MatrixTranslate(p[0], p[1], p[2]))
	for _, part := range showcase.Figure {
		name := primitives.Cylinder
		if part.Shape == showcase.ShapeSphere {
			name = primitives.Sphere
		}
		rot := [3]float32{part.LegRotation(s.pose.LeftLeg, s.pose.RightLeg), 0, 0}
		local := primitives.Transform(name, part.Offset, rot, part.Scale)
		s.reg.Draw(name, rl.MatrixMultiply(local, group), lighting.MaterialFor(part.Material))
	}
}

// Unload releases GPU resources. Call before the window closes.
func (s *Scene) Unload() {
	s.reg.Unload()
	s.sky.unload()
	s.imgs.unload()
}
