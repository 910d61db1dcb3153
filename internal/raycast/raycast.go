// Package raycast finds which scene objects lie under a pointer position.
package raycast

import (
	"math"
	"slices"

	"social-landing/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line. Dir is unit length, so hit distances are world units.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Hit is one intersection between a ray and an object.
type Hit struct {
	Object   *scene.Object
	Distance float64
	Point    mgl64.Vec3
}

// FromCamera returns the ray leaving the camera through pointer, given in normalized device
// coordinates ([-1,1] on both axes, +Y up).
func FromCamera(pointer mgl64.Vec2, cam *scene.Camera) Ray {
	inv := cam.Projection().Mul4(cam.View()).Inv()
	p := inv.Mul4x1(mgl64.Vec4{pointer.X(), pointer.Y(), 0.5, 1})
	if p.W() != 0 {
		p = p.Mul(1 / p.W())
	}
	dir := p.Vec3().Sub(cam.Position)
	if dir.Len() == 0 {
		dir = cam.Target.Sub(cam.Position)
	}
	return Ray{Origin: cam.Position, Dir: dir.Normalize()}
}

// Caster intersects rays with the clickable objects of a scene. Decorations are never tested.
type Caster struct {
	Scene *scene.Scene
	Near  float64
	Far   float64
}

// New returns a Caster over s that accepts hits at any positive distance.
func New(s *scene.Scene) *Caster {
	return &Caster{Scene: s, Far: math.Inf(1)}
}

// Cast returns every object hit by the camera ray through pointer, nearest first.
// Objects at equal distance keep their scene order.
func (c *Caster) Cast(pointer mgl64.Vec2, cam *scene.Camera) []Hit {
	return c.Intersect(FromCamera(pointer, cam))
}

// Intersect tests r against each object's box in that object's local space, so rotation,
// scale and the container rotation all count. Only the faces the ray enters through are hit:
// an object containing the ray origin is skipped.
func (c *Caster) Intersect(r Ray) []Hit {
	if c.Scene == nil {
		return nil
	}
	far := c.Far
	if far == 0 {
		far = math.Inf(1)
	}
	var hits []Hit
	for _, o := range c.Scene.Objects {
		inv := c.Scene.WorldMatrix(o).Inv()
		lo := inv.Mul4x1(r.Origin.Vec4(1)).Vec3()
		ld := inv.Mul4x1(r.Dir.Vec4(0)).Vec3()
		t, ok := enterBox(lo, ld, o.Geometry.HalfExtents())
		if !ok || t < c.Near || t > far {
			continue
		}
		hits = append(hits, Hit{Object: o, Distance: t, Point: r.At(t)})
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}

// enterBox is the slab test against the box [-h, h]. It returns the entry parameter along
// o + t*d, which must be strictly positive.
func enterBox(o, d, h mgl64.Vec3) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if o[i] < -h[i] || o[i] > h[i] {
				return 0, false
			}
			continue
		}
		t1 := (-h[i] - o[i]) / d[i]
		t2 := (h[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmin <= 0 {
		return 0, false
	}
	return tmin, true
}
