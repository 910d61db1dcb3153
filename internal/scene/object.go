package scene

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
)

// GeometryKind selects the mesh a node is drawn with.
type GeometryKind int

const (
	Box GeometryKind = iota
	Sphere
)

func (k GeometryKind) String() string {
	switch k {
	case Box:
		return "cube"
	case Sphere:
		return "sphere"
	}
	return "unknown"
}

// Geometry is a primitive shape centered on its node's origin. Size is the full extent on each
// axis (for a sphere all three equal the diameter). Segments is only used by spheres.
type Geometry struct {
	Kind     GeometryKind
	Size     mgl64.Vec3
	Segments int
}

// BoxGeometry returns an axis-aligned box w×h×d.
func BoxGeometry(w, h, d float64) Geometry {
	return Geometry{Kind: Box, Size: mgl64.Vec3{w, h, d}}
}

// SphereGeometry returns a sphere of the given radius.
func SphereGeometry(radius float64, segments int) Geometry {
	return Geometry{Kind: Sphere, Size: mgl64.Vec3{2 * radius, 2 * radius, 2 * radius}, Segments: segments}
}

// HalfExtents is half of Size.
func (g Geometry) HalfExtents() mgl64.Vec3 {
	return g.Size.Mul(0.5)
}

// Material is a flat colour (0xRRGGBB) optionally multiplied by a texture map.
type Material struct {
	Color     uint32
	Roughness float64
	Metalness float64
	Map       *image.RGBA
}

// Payload is the navigation data carried by a clickable object.
type Payload struct {
	Name string
	URL  string
}

// Object is a clickable entity. Geometry and Material belong to this object alone.
// Position is fixed after construction; Rotation and Scale change while the page runs.
type Object struct {
	Geometry Geometry
	Material Material
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
	Payload  Payload
}

func (*Object) isNode() {}

// NewObject returns an object at the origin with unit scale.
func NewObject(g Geometry, m Material) *Object {
	return &Object{Geometry: g, Material: m, Scale: mgl64.Vec3{1, 1, 1}}
}

// SetScale sets the same scale factor on all three axes.
func (o *Object) SetScale(f float64) {
	o.Scale = mgl64.Vec3{f, f, f}
}

// Matrix is the local transform T * R * S, relative to the scene container.
func (o *Object) Matrix() mgl64.Mat4 {
	t := mgl64.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
	s := mgl64.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z())
	return t.Mul4(eulerXYZ(o.Rotation)).Mul4(s)
}

// Decoration is a non-interactive star. It never moves on its own.
type Decoration struct {
	Geometry Geometry
	Color    uint32
	Position mgl64.Vec3
}

func (*Decoration) isNode() {}
