package scene

import "github.com/go-gl/mathgl/mgl64"

// Camera is a perspective camera. After changing Fovy, Aspect, Near or Far call UpdateProjection;
// Projection keeps returning the previous matrix until then.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	Fovy     float64 // vertical field of view in degrees
	Aspect   float64
	Near     float64
	Far      float64

	projection mgl64.Mat4
}

// NewPerspectiveCamera returns a camera at the origin looking down -Z with its projection computed.
func NewPerspectiveCamera(fovy, aspect, near, far float64) *Camera {
	c := &Camera{
		Target: mgl64.Vec3{0, 0, -1},
		Up:     mgl64.Vec3{0, 1, 0},
		Fovy:   fovy,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection recomputes the projection matrix from the current lens parameters.
func (c *Camera) UpdateProjection() {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.Fovy), aspect, c.Near, c.Far)
}

// Projection returns the matrix computed by the last UpdateProjection.
func (c *Camera) Projection() mgl64.Mat4 {
	return c.projection
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}
