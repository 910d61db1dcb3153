package raycast

import (
	"math"
	"testing"

	"social-landing/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func cube(name string, x, y, z float64) *scene.Object {
	o := scene.NewObject(scene.BoxGeometry(2, 2, 2), scene.Material{})
	o.Position = mgl64.Vec3{x, y, z}
	o.Payload = scene.Payload{Name: name, URL: "https://example.com/" + name}
	return o
}

func testCamera() *scene.Camera {
	return scene.NewCamera(1600, 900)
}

func TestFromCameraCenter(t *testing.T) {
	r := FromCamera(mgl64.Vec2{0, 0}, testCamera())
	if !r.Origin.ApproxEqual(mgl64.Vec3{0, 0, 15}) {
		t.Fatalf("origin: %v", r.Origin)
	}
	if !r.Dir.ApproxEqualThreshold(mgl64.Vec3{0, 0, -1}, 1e-9) {
		t.Fatalf("dir: %v", r.Dir)
	}
}

func TestFromCameraDirectionSigns(t *testing.T) {
	r := FromCamera(mgl64.Vec2{0.5, 0.5}, testCamera())
	if r.Dir.X() <= 0 || r.Dir.Y() <= 0 || r.Dir.Z() >= 0 {
		t.Fatalf("upper-right pointer should look right, up and forward: %v", r.Dir)
	}
	if math.Abs(r.Dir.Len()-1) > eps {
		t.Fatalf("dir not normalized: %v", r.Dir.Len())
	}
}

func TestCastCenterHitsOriginCube(t *testing.T) {
	s := scene.New()
	s.Add(cube("left", -6, 0, 0), cube("center", 0, 0, 0), cube("right", 6, 0, 0))
	hits := New(s).Cast(mgl64.Vec2{0, 0}, testCamera())
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Object.Payload.Name != "center" {
		t.Fatalf("hit %q", hits[0].Object.Payload.Name)
	}
	if math.Abs(hits[0].Distance-14) > eps {
		t.Fatalf("distance: %v", hits[0].Distance)
	}
}

func TestCastMiss(t *testing.T) {
	s := scene.New()
	s.Add(cube("center", 0, 0, 0))
	for _, p := range []mgl64.Vec2{{0.95, 0.95}, {-0.95, 0.9}, {0.5, -0.9}} {
		if hits := New(s).Cast(p, testCamera()); len(hits) != 0 {
			t.Fatalf("pointer %v should miss, got %d hits", p, len(hits))
		}
	}
}

func TestCastNearestFirstRegardlessOfOrder(t *testing.T) {
	far := cube("far", 0, 0, 0)
	near := cube("near", 0, 0, 5)
	for _, order := range [][]*scene.Object{{far, near}, {near, far}} {
		s := scene.New()
		s.Add(order[0], order[1])
		hits := New(s).Cast(mgl64.Vec2{0, 0}, testCamera())
		if len(hits) != 2 {
			t.Fatalf("expected 2 hits, got %d", len(hits))
		}
		if hits[0].Object != near {
			t.Fatalf("nearest should win, got %q", hits[0].Object.Payload.Name)
		}
		if math.Abs(hits[0].Distance-9) > eps || math.Abs(hits[1].Distance-14) > eps {
			t.Fatalf("distances: %v %v", hits[0].Distance, hits[1].Distance)
		}
	}
}

func TestCastHonoursObjectTransform(t *testing.T) {
	s := scene.New()
	o := cube("spun", 0, 0, 0)
	o.Rotation = mgl64.Vec3{0, math.Pi / 4, 0}
	s.Add(o)
	hits := New(s).Cast(mgl64.Vec2{0, 0}, testCamera())
	if len(hits) != 1 {
		t.Fatalf("expected hit")
	}
	if want := 15 - math.Sqrt2; math.Abs(hits[0].Distance-want) > 1e-9 {
		t.Fatalf("rotated cube edge distance %v, want %v", hits[0].Distance, want)
	}

	o.Rotation = mgl64.Vec3{}
	o.SetScale(1.2)
	hits = New(s).Cast(mgl64.Vec2{0, 0}, testCamera())
	if len(hits) != 1 || math.Abs(hits[0].Distance-13.8) > 1e-9 {
		t.Fatalf("scaled cube: %+v", hits)
	}
}

func TestCastHonoursSceneRotation(t *testing.T) {
	s := scene.New()
	s.Add(cube("right", 6, 0, 0))
	s.Rotation = mgl64.Vec3{0, math.Pi / 2, 0}
	hits := New(s).Cast(mgl64.Vec2{0, 0}, testCamera())
	if len(hits) != 1 {
		t.Fatalf("rotated container should bring the cube under the center ray")
	}
	if math.Abs(hits[0].Distance-20) > 1e-9 {
		t.Fatalf("distance %v", hits[0].Distance)
	}
}

func TestCastIgnoresDecorations(t *testing.T) {
	s := scene.New()
	s.Add(&scene.Decoration{Geometry: scene.SphereGeometry(5, 8), Position: mgl64.Vec3{0, 0, 0}})
	if hits := New(s).Cast(mgl64.Vec2{0, 0}, testCamera()); len(hits) != 0 {
		t.Fatalf("decorations must not be hit")
	}
}

func TestCastFarLimit(t *testing.T) {
	s := scene.New()
	s.Add(cube("center", 0, 0, 0))
	c := New(s)
	c.Far = 10
	if hits := c.Cast(mgl64.Vec2{0, 0}, testCamera()); len(hits) != 0 {
		t.Fatalf("hit beyond Far should be dropped")
	}
}

func TestIntersectOriginInsideIsSkipped(t *testing.T) {
	s := scene.New()
	s.Add(cube("center", 0, 0, 0))
	hits := New(s).Intersect(Ray{Origin: mgl64.Vec3{0, 0, 0}, Dir: mgl64.Vec3{0, 0, -1}})
	if len(hits) != 0 {
		t.Fatalf("ray starting inside should not hit")
	}
}
