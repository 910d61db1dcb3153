package graphics

import (
	"social-landing/internal/primitives"
	"social-landing/internal/scene"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

// Renderer draws a scene.Scene through a scene.Camera with raylib. Label textures are uploaded
// on the first frame an object is drawn, when the GL context is guaranteed to exist.
type Renderer struct {
	reg    *primitives.Registry
	labels map[*scene.Object]rl.Texture2D
	width  int
	height int
}

// NewRenderer returns a renderer for a surface of the given logical size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		reg:    primitives.NewRegistry(24),
		labels: make(map[*scene.Object]rl.Texture2D),
		width:  width,
		height: height,
	}
}

// SetSize resizes the surface. The window is only resized when it differs from the
// requested size, so forwarding a resize event back here is a no-op.
func (r *Renderer) SetSize(width, height int) {
	r.width, r.height = width, height
	if rl.GetScreenWidth() != width || rl.GetScreenHeight() != height {
		rl.SetWindowSize(width, height)
	}
}

// Size returns the logical surface size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// PixelSize returns the surface size in device pixels (logical size times the DPI scale).
func (r *Renderer) PixelSize() (int, int) {
	dpi := rl.GetWindowScaleDPI()
	sx, sy := dpi.X, dpi.Y
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	return int(math32.Floor(float32(r.width)*sx + 0.5)), int(math32.Floor(float32(r.height)*sy + 0.5))
}

// Render draws s as seen from cam. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Render(s *scene.Scene, cam *scene.Camera) {
	r.reg.SetEnvironment(environment(s, cam))
	rl.BeginMode3D(camera3D(cam))
	for _, d := range s.Decorations {
		m := s.DecorationMatrix(d).Mul4(sizeMatrix(d.Geometry))
		r.reg.Draw(kindOf(d.Geometry), toMatrix(m), color(d.Color), primitives.Surface{Roughness: 1})
	}
	for _, o := range s.Objects {
		m := s.WorldMatrix(o).Mul4(sizeMatrix(o.Geometry))
		surf := primitives.Surface{
			Roughness: float32(o.Material.Roughness),
			Metalness: float32(o.Material.Metalness),
		}
		r.reg.DrawWithTexture(kindOf(o.Geometry), toMatrix(m), color(o.Material.Color), surf, r.label(o))
	}
	rl.EndMode3D()
}

func (r *Renderer) label(o *scene.Object) rl.Texture2D {
	if tex, ok := r.labels[o]; ok {
		return tex
	}
	tex := primitives.LoadTexture(o.Material.Map)
	r.labels[o] = tex
	return tex
}

// Unload releases GPU resources. Call before the window closes.
func (r *Renderer) Unload() {
	for o, tex := range r.labels {
		if rl.IsTextureValid(tex) {
			rl.UnloadTexture(tex)
		}
		delete(r.labels, o)
	}
	r.reg.Unload()
}

// environment flattens the scene's lights and fog. The last point light wins; ambient lights add up.
func environment(s *scene.Scene, cam *scene.Camera) primitives.Environment {
	env := primitives.Environment{ViewPos: vec3(cam.Position)}
	for _, l := range s.Lights {
		switch v := l.(type) {
		case *scene.PointLight:
			// Lights live in the rotating container too.
			env.LightPos = vec3(s.Matrix().Mul4x1(v.Position.Vec4(1)).Vec3())
			env.LightColor = rgb(v.Color, 1)
			env.LightIntensity = float32(v.Intensity)
			env.LightDistance = float32(v.Distance)
		case *scene.AmbientLight:
			a := rgb(v.Color, v.Intensity)
			for i := range env.Ambient {
				env.Ambient[i] += a[i]
			}
		}
	}
	if s.Fog != nil {
		env.FogColor = rgb(s.Fog.Color, 1)
		env.FogDensity = float32(s.Fog.Density)
	}
	return env
}

func camera3D(cam *scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(float32(cam.Position.X()), float32(cam.Position.Y()), float32(cam.Position.Z())),
		Target:     rl.NewVector3(float32(cam.Target.X()), float32(cam.Target.Y()), float32(cam.Target.Z())),
		Up:         rl.NewVector3(float32(cam.Up.X()), float32(cam.Up.Y()), float32(cam.Up.Z())),
		Fovy:       float32(cam.Fovy),
		Projection: rl.CameraPerspective,
	}
}

func kindOf(g scene.Geometry) primitives.Kind {
	if g.Kind == scene.Sphere {
		return primitives.Sphere
	}
	return primitives.Cube
}

// sizeMatrix scales the registry's unit meshes up to the geometry's extent.
func sizeMatrix(g scene.Geometry) mgl64.Mat4 {
	return mgl64.Scale3D(g.Size.X(), g.Size.Y(), g.Size.Z())
}

// toMatrix converts column-major mgl64 to raylib (Mi is the i-th column-major element).
func toMatrix(m mgl64.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: float32(m[0]), M1: float32(m[1]), M2: float32(m[2]), M3: float32(m[3]),
		M4: float32(m[4]), M5: float32(m[5]), M6: float32(m[6]), M7: float32(m[7]),
		M8: float32(m[8]), M9: float32(m[9]), M10: float32(m[10]), M11: float32(m[11]),
		M12: float32(m[12]), M13: float32(m[13]), M14: float32(m[14]), M15: float32(m[15]),
	}
}

func vec3(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v.X()), float32(v.Y()), float32(v.Z())}
}

func rgb(c uint32, intensity float64) [3]float32 {
	r, g, b := scene.RGB(c)
	return [3]float32{float32(r * intensity), float32(g * intensity), float32(b * intensity)}
}

func color(c uint32) rl.Color {
	return rl.NewColor(uint8(c>>16), uint8(c>>8), uint8(c), 255)
}
