package primitives

import (
	"runway/internal/layout"
	"runway/internal/lighting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Primitive mesh names.
const (
	Cube     = "cube"
	Sphere   = "sphere"
	Cylinder = "cylinder"
)

// cached holds mesh and materials for a primitive. Created lazily on first Draw.
// texturedMtl is the same mesh drawn with an albedo texture.
type cached struct {
	mesh        rl.Mesh
	mtl         rl.Material
	texturedMtl rl.Material
}

// Registry maps primitive names to mesh+material. Meshes and shaders are
// created on first use so that GPU resources are allocated after the
// window/OpenGL context exists.
type Registry struct {
	cache        map[string]cached
	lit          rl.Shader
	litTextured  rl.Shader
	litLocs      litLocs
	texturedLocs litLocs
	shadersDone  bool
	viewPos      [3]float32
	rig          lighting.Rig
}

// NewRegistry returns a registry with no primitives loaded.
func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[string]cached),
		rig:   lighting.RunwayRig(),
	}
}

// Mesh resolution.
const (
	defaultSphereRings    = 16
	defaultSphereSlices   = 16
	defaultCylinderSlices = 8
)

// SetView sets camera position and the lighting rig for this frame. Call once
// per frame inside BeginMode3D before drawing.
func (r *Registry) SetView(viewPos [3]float32, rig lighting.Rig) {
	r.ensureShaders()
	r.viewPos = viewPos
	r.rig = rig
	applyRig(r.lit, r.litLocs, viewPos, rig)
	applyRig(r.litTextured, r.texturedLocs, viewPos, rig)
}

func (r *Registry) ensureShaders() {
	if r.shadersDone {
		return
	}
	r.shadersDone = true
	r.lit = loadLitShader()
	if rl.IsShaderValid(r.lit) {
		r.litLocs = lookupLocs(r.lit)
	}
	r.litTextured = loadLitTexturedShader()
	if rl.IsShaderValid(r.litTextured) {
		r.texturedLocs = lookupLocs(r.litTextured)
	}
}

// ensure creates the mesh and both materials for name if not yet cached.
func (r *Registry) ensure(name string) (cached, bool) {
	if c, ok := r.cache[name]; ok {
		return c, true
	}
	var mesh rl.Mesh
	switch name {
	case Cube:
		mesh = rl.GenMeshCube(1, 1, 1)
	case Sphere:
		// Radius 0.5 so the unit sphere matches the unit cube.
		mesh = rl.GenMeshSphere(0.5, defaultSphereRings, defaultSphereSlices)
	case Cylinder:
		mesh = rl.GenMeshCylinder(0.5, 1, defaultCylinderSlices)
	default:
		return cached{}, false
	}
	r.ensureShaders()
	mtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.lit) {
		mtl.Shader = r.lit
	}
	texturedMtl := rl.LoadMaterialDefault()
	if rl.IsShaderValid(r.litTextured) {
		texturedMtl.Shader = r.litTextured
	}
	c := cached{mesh: mesh, mtl: mtl, texturedMtl: texturedMtl}
	r.cache[name] = c
	return c, true
}

// centerOffset shifts a mesh in model space so the transform origin is its
// centre. Raylib cylinders have their base at Y=0.
func centerOffset(name string) rl.Matrix {
	if name == Cylinder {
		return rl.MatrixTranslate(0, -0.5, 0)
	}
	return rl.MatrixIdentity()
}

// Transform composes centre offset, scale, Euler XYZ rotation and translation
// for a unit primitive.
func Transform(name string, position, rotation, scale [3]float32) rl.Matrix {
	sx, sy, sz := scale[0], scale[1], scale[2]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	m := rl.MatrixMultiply(centerOffset(name), rl.MatrixScale(sx, sy, sz))
	m = rl.MatrixMultiply(m, rl.MatrixRotateXYZ(rl.NewVector3(rotation[0], rotation[1], rotation[2])))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(position[0], position[1], position[2]))
}

// MeshFor maps a layout kind to the primitive mesh drawing it.
func MeshFor(k layout.Kind) string {
	if k == layout.Cylinder {
		return Cylinder
	}
	return Cube
}

// Draw draws one instance of name with the given model transform and material.
// Must be called between BeginMode3D and EndMode3D, after SetView.
// Unknown names are skipped.
func (r *Registry) Draw(name string, transform rl.Matrix, mat lighting.Material) {
	c, ok := r.ensure(name)
	if !ok {
		return
	}
	r.drawWith(c.mtl, r.lit, r.litLocs, c.mesh, transform, mat)
}

// DrawWithTexture is Draw with tex as the albedo map. Invalid textures fall back to Draw.
func (r *Registry) DrawWithTexture(name string, transform rl.Matrix, mat lighting.Material, tex rl.Texture2D) {
	if !rl.IsTextureValid(tex) {
		r.Draw(name, transform, mat)
		return
	}
	c, ok := r.ensure(name)
	if !ok {
		return
	}
	rl.SetMaterialTexture(&c.texturedMtl, rl.MapAlbedo, tex)
	r.drawWith(c.texturedMtl, r.litTextured, r.texturedLocs, c.mesh, transform, mat)
}

func (r *Registry) drawWith(mtl rl.Material, shader rl.Shader, locs litLocs, mesh rl.Mesh, transform rl.Matrix, mat lighting.Material) {
	cr, cg, cb, ca := mat.RGBA()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = rl.NewColor(cr, cg, cb, ca)
	}
	if rl.IsShaderValid(shader) {
		setFloat(shader, locs.specularStrength, r.rig.SpecularStrength*mat.Specular)
	}
	if mat.Transparent() {
		rl.BeginBlendMode(rl.BlendAlpha)
		rl.DrawMesh(mesh, mtl, transform)
		rl.EndBlendMode()
		return
	}
	rl.DrawMesh(mesh, mtl, transform)
}

// DrawDescriptor draws a layout descriptor with an explicit rotation (the
// generated rotation plus any animation drift).
func (r *Registry) DrawDescriptor(d layout.Descriptor, rotation [3]float32, mat lighting.Material) {
	name := MeshFor(d.Kind)
	r.Draw(name, Transform(name, d.Position, rotation, d.Size()), mat)
}

// Unload releases cached meshes and shaders. Call before the window closes.
func (r *Registry) Unload() {
	for name, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, name)
	}
	if r.shadersDone {
		rl.UnloadShader(r.lit)
		rl.UnloadShader(r.litTextured)
		r.shadersDone = false
	}
}
