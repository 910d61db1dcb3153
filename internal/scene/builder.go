package scene

import (
	"image"
	"math/rand/v2"

	"social-landing/internal/labeltex"
	"social-landing/internal/socials"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// CubeSize is the edge length of every social cube.
	CubeSize = 2
	// DefaultStarCount and DefaultStarSpread: stars are scattered uniformly in a cube of side
	// DefaultStarSpread centered on the origin.
	DefaultStarCount  = 200
	DefaultStarSpread = 100

	starRadius   = 0.1
	starSegments = 24
	starColor    = 0xffffff

	cubeRoughness = 0.3
	cubeMetalness = 0.7
)

// BuildOptions controls Build. Zero values fall back to the defaults above; a nil Rand uses a
// time-seeded source and a nil Labeler uses labeltex.Render.
type BuildOptions struct {
	StarCount  int
	StarSpread float64
	Rand       *rand.Rand
	Labeler    func(text string) *image.RGBA
}

// Build creates the whole page scene: black exp2 fog, a point light and an ambient light, one
// cube per link (in link order) and the star field.
func Build(links []socials.Link, opts BuildOptions) *Scene {
	if opts.StarCount <= 0 {
		opts.StarCount = DefaultStarCount
	}
	if opts.StarSpread <= 0 {
		opts.StarSpread = DefaultStarSpread
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Labeler == nil {
		opts.Labeler = func(text string) *image.RGBA { return labeltex.Render(text, labeltex.DefaultOptions()) }
	}

	s := New()
	s.Fog = &Fog{Color: 0x000000, Density: 0.02}
	s.Add(
		&PointLight{Color: 0xffffff, Intensity: 200, Distance: 100, Position: mgl64.Vec3{5, 5, 5}},
		&AmbientLight{Color: 0x404040, Intensity: 2},
	)
	for _, l := range links {
		s.Add(NewLinkObject(l, opts.Labeler(l.Icon)))
	}
	for i := 0; i < opts.StarCount; i++ {
		s.Add(NewStar(opts.Rand, opts.StarSpread))
	}
	return s
}

// NewLinkObject returns the cube for a social link with label as its texture map.
func NewLinkObject(l socials.Link, label *image.RGBA) *Object {
	o := NewObject(BoxGeometry(CubeSize, CubeSize, CubeSize), Material{
		Color:     l.Color,
		Roughness: cubeRoughness,
		Metalness: cubeMetalness,
		Map:       label,
	})
	o.Position = mgl64.Vec3{l.Position[0], l.Position[1], l.Position[2]}
	o.Payload = Payload{Name: l.Name, URL: l.URL}
	return o
}

// NewStar returns a decoration with each coordinate drawn from U(-spread/2, spread/2).
func NewStar(r *rand.Rand, spread float64) *Decoration {
	return &Decoration{
		Geometry: SphereGeometry(starRadius, starSegments),
		Color:    starColor,
		Position: mgl64.Vec3{randSpread(r, spread), randSpread(r, spread), randSpread(r, spread)},
	}
}

func randSpread(r *rand.Rand, spread float64) float64 {
	return spread * (0.5 - r.Float64())
}

// NewCamera returns the page camera: 75° fov, clip planes 0.1..1000, at z=15 looking at the origin.
func NewCamera(width, height int) *Camera {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	c := NewPerspectiveCamera(75, aspect, 0.1, 1000)
	c.Position = mgl64.Vec3{0, 0, 15}
	c.Target = mgl64.Vec3{0, 0, 0}
	return c
}
