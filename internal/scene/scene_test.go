package scene

import (
	"image"
	"math"
	"math/rand/v2"
	"testing"

	"social-landing/internal/socials"

	"github.com/go-gl/mathgl/mgl64"
)

func noLabel(string) *image.RGBA { return nil }

func TestBuild(t *testing.T) {
	links := socials.Defaults()
	s := Build(links, BuildOptions{Rand: rand.New(rand.NewPCG(7, 7)), Labeler: noLabel})
	if len(s.Objects) != len(links) {
		t.Fatalf("expected %d objects, got %d", len(links), len(s.Objects))
	}
	if len(s.Decorations) != DefaultStarCount {
		t.Fatalf("expected %d stars, got %d", DefaultStarCount, len(s.Decorations))
	}
	for i, o := range s.Objects {
		l := links[i]
		if o.Payload.Name != l.Name || o.Payload.URL != l.URL {
			t.Fatalf("object %d payload %+v", i, o.Payload)
		}
		if o.Position != (mgl64.Vec3{l.Position[0], l.Position[1], l.Position[2]}) {
			t.Fatalf("object %d position %v", i, o.Position)
		}
		if o.Scale != (mgl64.Vec3{1, 1, 1}) {
			t.Fatalf("object %d scale %v", i, o.Scale)
		}
		if o.Geometry.Kind != Box || o.Geometry.Size != (mgl64.Vec3{2, 2, 2}) {
			t.Fatalf("object %d geometry %+v", i, o.Geometry)
		}
		if o.Material.Color != l.Color || o.Material.Roughness != 0.3 || o.Material.Metalness != 0.7 {
			t.Fatalf("object %d material %+v", i, o.Material)
		}
	}
	if len(s.Lights) != 2 {
		t.Fatalf("expected point + ambient light, got %d", len(s.Lights))
	}
	if s.Fog == nil || s.Fog.Density != 0.02 {
		t.Fatalf("fog %+v", s.Fog)
	}
}

func TestBuildLabelsUseIcon(t *testing.T) {
	var seen []string
	Build(socials.Defaults(), BuildOptions{StarCount: 1, Labeler: func(s string) *image.RGBA {
		seen = append(seen, s)
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}})
	if len(seen) != 5 || seen[0] != "Twitch" || seen[4] != "TikTok" {
		t.Fatalf("labels %v", seen)
	}
}

func TestStarsWithinSpread(t *testing.T) {
	s := Build(nil, BuildOptions{StarCount: 2000, Rand: rand.New(rand.NewPCG(1, 1)), Labeler: noLabel})
	var lo, hi mgl64.Vec3
	for _, d := range s.Decorations {
		for i := 0; i < 3; i++ {
			v := d.Position[i]
			if v < -50 || v > 50 {
				t.Fatalf("star coordinate %v out of [-50,50]", v)
			}
			lo[i] = math.Min(lo[i], v)
			hi[i] = math.Max(hi[i], v)
		}
		if d.Geometry.Kind != Sphere || d.Geometry.HalfExtents() != (mgl64.Vec3{0.1, 0.1, 0.1}) {
			t.Fatalf("star geometry %+v", d.Geometry)
		}
	}
	for i := 0; i < 3; i++ {
		if lo[i] > -45 || hi[i] < 45 {
			t.Fatalf("axis %d spread too narrow: [%v, %v]", i, lo[i], hi[i])
		}
	}
}

func TestBuildDeterministicWithSeed(t *testing.T) {
	a := Build(nil, BuildOptions{StarCount: 20, Rand: rand.New(rand.NewPCG(3, 4)), Labeler: noLabel})
	b := Build(nil, BuildOptions{StarCount: 20, Rand: rand.New(rand.NewPCG(3, 4)), Labeler: noLabel})
	for i := range a.Decorations {
		if a.Decorations[i].Position != b.Decorations[i].Position {
			t.Fatalf("star %d differs", i)
		}
	}
}

func TestAdvanceThousandFrames(t *testing.T) {
	s := Build(socials.Defaults(), BuildOptions{StarCount: 1, Labeler: noLabel})
	for i := 0; i < 1000; i++ {
		s.Advance()
	}
	mod := func(v float64) float64 { return math.Mod(v, 2*math.Pi) }
	for _, o := range s.Objects {
		if math.Abs(mod(o.Rotation.X())-mod(5.0)) > 1e-9 {
			t.Fatalf("x rotation %v", o.Rotation.X())
		}
		if math.Abs(mod(o.Rotation.Y())-mod(10.0)) > 1e-9 {
			t.Fatalf("y rotation %v", o.Rotation.Y())
		}
		if o.Rotation.Z() != 0 {
			t.Fatalf("z rotation must not change")
		}
	}
	if math.Abs(s.Rotation.Y()-0.5) > 1e-9 || s.Rotation.X() != 0 {
		t.Fatalf("scene rotation %v", s.Rotation)
	}
	for _, d := range s.Decorations {
		if d.Position.Len() > 100 {
			t.Fatalf("stars must not move")
		}
	}
}

func TestAddSortsNodes(t *testing.T) {
	s := New()
	o := NewObject(BoxGeometry(1, 1, 1), Material{})
	d := &Decoration{}
	s.Add(d, &AmbientLight{}, o)
	if len(s.Objects) != 1 || s.Objects[0] != o || len(s.Decorations) != 1 || len(s.Lights) != 1 {
		t.Fatalf("Add misfiled nodes: %d objects, %d decorations, %d lights", len(s.Objects), len(s.Decorations), len(s.Lights))
	}
}

func TestObjectMatrix(t *testing.T) {
	o := NewObject(BoxGeometry(2, 2, 2), Material{})
	o.Position = mgl64.Vec3{3, 0, 0}
	o.Rotation = mgl64.Vec3{0, math.Pi / 2, 0}
	o.SetScale(2)
	got := o.Matrix().Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()
	// scale to (2,0,0), rotate about Y to (0,0,-2), translate to (3,0,-2)
	if !got.ApproxEqualThreshold(mgl64.Vec3{3, 0, -2}, 1e-12) {
		t.Fatalf("got %v", got)
	}
}

func TestCameraProjectionNeedsUpdate(t *testing.T) {
	c := NewCamera(1600, 900)
	if c.Position != (mgl64.Vec3{0, 0, 15}) || c.Fovy != 75 || c.Near != 0.1 || c.Far != 1000 {
		t.Fatalf("camera %+v", c)
	}
	before := c.Projection()
	c.Aspect = 1
	if c.Projection() != before {
		t.Fatalf("projection changed before UpdateProjection")
	}
	c.UpdateProjection()
	if c.Projection() == before {
		t.Fatalf("projection not recomputed")
	}
	if want := mgl64.Perspective(mgl64.DegToRad(75), 1, 0.1, 1000); c.Projection() != want {
		t.Fatalf("projection mismatch")
	}
}

func TestRGB(t *testing.T) {
	r, g, b := RGB(0x404040)
	if math.Abs(r-64.0/255) > 1e-12 || r != g || g != b {
		t.Fatalf("RGB(0x404040) = %v %v %v", r, g, b)
	}
}
