package scene

import "github.com/go-gl/mathgl/mgl64"

// Light is a node that illuminates the scene.
type Light interface {
	Node
	isLight()
}

// PointLight emits from Position. Distance is the cutoff range (0 = unlimited); intensity falls
// off with the inverse square of the distance.
type PointLight struct {
	Color     uint32
	Intensity float64
	Distance  float64
	Position  mgl64.Vec3
}

func (*PointLight) isNode()  {}
func (*PointLight) isLight() {}

// AmbientLight lights every surface evenly.
type AmbientLight struct {
	Color     uint32
	Intensity float64
}

func (*AmbientLight) isNode()  {}
func (*AmbientLight) isLight() {}

// RGB splits 0xRRGGBB into components in [0,1].
func RGB(c uint32) (r, g, b float64) {
	return float64(c>>16&0xff) / 255, float64(c>>8&0xff) / 255, float64(c&0xff) / 255
}
