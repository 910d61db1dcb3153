package primitives

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind names a cached mesh.
type Kind string

const (
	Cube   Kind = "cube"
	Sphere Kind = "sphere"
)

// cached holds mesh and materials for a primitive kind. Created lazily on first Draw.
// texturedMtl is used when drawing with an albedo texture (same mesh, different material).
type cached struct {
	mesh        rl.Mesh
	mtl         rl.Material
	texturedMtl rl.Material
}

// Surface is the per-draw shading input: roughness and metalness in [0,1].
type Surface struct {
	Roughness float32
	Metalness float32
}

// Environment is the per-frame lighting and fog state shared by every draw.
type Environment struct {
	ViewPos        [3]float32
	LightPos       [3]float32
	LightColor     [3]float32
	LightIntensity float32
	LightDistance  float32 // 0 = no cutoff
	Ambient        [3]float32
	FogColor       [3]float32
	FogDensity     float32
}

// Registry maps primitive kinds to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
// Unit meshes: the cube is 1×1×1 and the sphere has diameter 1, both centered on the origin.
type Registry struct {
	cache          map[Kind]cached
	env            Environment
	sphereSegments int32
}

// NewRegistry returns a registry with no primitives. sphereSegments sets ring and slice count
// for the sphere mesh.
func NewRegistry(sphereSegments int) *Registry {
	if sphereSegments < 3 {
		sphereSegments = 16
	}
	return &Registry{
		cache:          make(map[Kind]cached),
		sphereSegments: int32(sphereSegments),
	}
}

// SetEnvironment sets lighting and fog for this frame. Call once per frame before drawing.
func (r *Registry) SetEnvironment(env Environment) {
	r.env = env
}

func (r *Registry) ensure(kind Kind) (cached, bool) {
	if c, ok := r.cache[kind]; ok {
		return c, true
	}
	var mesh rl.Mesh
	switch kind {
	case Cube:
		mesh = rl.GenMeshCube(1, 1, 1)
	case Sphere:
		mesh = rl.GenMeshSphere(0.5, int(r.sphereSegments), int(r.sphereSegments))
	default:
		return cached{}, false
	}
	mtl := rl.LoadMaterialDefault()
	if s := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(s) {
		mtl.Shader = s
	}
	texturedMtl := rl.LoadMaterialDefault()
	if s := rl.LoadShaderFromMemory(litVS, litTexturedFS); rl.IsShaderValid(s) {
		texturedMtl.Shader = s
	}
	c := cached{mesh: mesh, mtl: mtl, texturedMtl: texturedMtl}
	r.cache[kind] = c
	return c, true
}

// specularPower maps roughness to a Blinn-Phong exponent: 0 → 256, 1 → 2.
func specularPower(roughness float32) float32 {
	return math32.Pow(2, 1+7*(1-clamp01(roughness)))
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}

// setUniforms uploads environment and surface values (cgo-safe: local arrays).
func (r *Registry) setUniforms(shader rl.Shader, surf Surface) {
	if !rl.IsShaderValid(shader) {
		return
	}
	e := r.env
	vec3 := func(name string, v [3]float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValueV(shader, loc, v[:], rl.ShaderUniformVec3, 1)
		}
	}
	float := func(name string, v float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
	vec3("viewPos", e.ViewPos)
	vec3("lightPos", e.LightPos)
	vec3("lightColor", e.LightColor)
	float("lightIntensity", e.LightIntensity)
	float("lightDistance", e.LightDistance)
	vec3("ambient", e.Ambient)
	vec3("fogColor", e.FogColor)
	float("fogDensity", e.FogDensity)
	float("specularPower", specularPower(surf.Roughness))
	float("metalness", clamp01(surf.Metalness))
}

// Draw draws one instance of kind with the given model transform and tint.
// Must be called between BeginMode3D and EndMode3D. Unknown kinds are skipped.
func (r *Registry) Draw(kind Kind, transform rl.Matrix, tint rl.Color, surf Surface) {
	c, ok := r.ensure(kind)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setUniforms(c.mtl.Shader, surf)
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// DrawWithTexture is Draw with tex as the albedo map; the texel colour is multiplied by tint.
// An invalid texture falls back to Draw.
func (r *Registry) DrawWithTexture(kind Kind, transform rl.Matrix, tint rl.Color, surf Surface, tex rl.Texture2D) {
	if !rl.IsTextureValid(tex) {
		r.Draw(kind, transform, tint, surf)
		return
	}
	c, ok := r.ensure(kind)
	if !ok {
		return
	}
	rl.SetMaterialTexture(&c.texturedMtl, rl.MapAlbedo, tex)
	if albedo := c.texturedMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setUniforms(c.texturedMtl.Shader, surf)
	rl.DrawMesh(c.mesh, c.texturedMtl, transform)
}

// Unload releases every cached mesh and shader. Call before closing the window.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadShader(c.mtl.Shader)
		rl.UnloadShader(c.texturedMtl.Shader)
		rl.UnloadMesh(&c.mesh)
		delete(r.cache, k)
	}
}
