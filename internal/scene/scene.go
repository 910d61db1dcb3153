package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Per-frame rotation increments in radians. They are applied once per rendered frame, not scaled by
// elapsed time, so the spin speed follows the display refresh rate.
const (
	ObjectSpinX = 0.005
	ObjectSpinY = 0.01
	SceneSpinY  = 0.0005
)

// Node is anything that can be added to a Scene.
type Node interface {
	isNode()
}

// Fog is exponential-squared distance fog: factor = 1 - exp(-(Density*d)^2).
type Fog struct {
	Color   uint32
	Density float64
}

// Scene is the single container for everything drawn on the page. Objects are the clickable cubes
// (hit-tested), Decorations are the stars (never hit-tested). Rotation is applied to the whole
// container on top of each node's own transform.
type Scene struct {
	Rotation    mgl64.Vec3
	Background  uint32
	Fog         *Fog
	Objects     []*Object
	Decorations []*Decoration
	Lights      []Light
}

// New returns an empty scene with a black background and no fog.
func New() *Scene {
	return &Scene{}
}

// Add appends n to the matching list. Insertion order is kept.
func (s *Scene) Add(nodes ...Node) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *Object:
			s.Objects = append(s.Objects, v)
		case *Decoration:
			s.Decorations = append(s.Decorations, v)
		case Light:
			s.Lights = append(s.Lights, v)
		}
	}
}

// Matrix is the container transform (Euler XYZ rotation about the origin).
func (s *Scene) Matrix() mgl64.Mat4 {
	return eulerXYZ(s.Rotation)
}

// WorldMatrix returns the transform taking o's local space to world space.
func (s *Scene) WorldMatrix(o *Object) mgl64.Mat4 {
	return s.Matrix().Mul4(o.Matrix())
}

// DecorationMatrix returns the world transform of a decoration.
func (s *Scene) DecorationMatrix(d *Decoration) mgl64.Mat4 {
	return s.Matrix().Mul4(mgl64.Translate3D(d.Position.X(), d.Position.Y(), d.Position.Z()))
}

// Advance runs one animation frame: every object spins on X and Y and the container drifts on Y.
// Angles grow without wrapping.
func (s *Scene) Advance() {
	for _, o := range s.Objects {
		o.Rotation[0] += ObjectSpinX
		o.Rotation[1] += ObjectSpinY
	}
	s.Rotation[1] += SceneSpinY
}

// eulerXYZ builds Rx * Ry * Rz, the intrinsic XYZ order used for every node.
func eulerXYZ(r mgl64.Vec3) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(r.X()).Mul4(mgl64.HomogRotate3DY(r.Y())).Mul4(mgl64.HomogRotate3DZ(r.Z()))
}
