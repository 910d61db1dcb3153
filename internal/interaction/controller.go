// Package interaction resolves pointer hover and click against the clickable objects of a scene.
package interaction

import (
	"social-landing/internal/logger"
	"social-landing/internal/raycast"
	"social-landing/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// NeutralScale and HoverScale are the uniform scale factors of an idle and a hovered object.
	NeutralScale = 1.0
	HoverScale   = 1.2
)

// CursorStyle is the pointer affordance shown over the surface.
type CursorStyle int

const (
	CursorDefault CursorStyle = iota
	CursorPointer
)

func (c CursorStyle) String() string {
	if c == CursorPointer {
		return "pointer"
	}
	return "default"
}

// Raycaster returns the objects under a pointer (normalized device coordinates), nearest first.
type Raycaster interface {
	Cast(pointer mgl64.Vec2, cam *scene.Camera) []raycast.Hit
}

// Navigator opens a URL in a new browsing context. Failures are not reported.
type Navigator interface {
	Open(url string)
}

// Cursor shows a cursor style.
type Cursor interface {
	SetCursor(style CursorStyle)
}

// Surface is the render target resized together with the camera.
type Surface interface {
	SetSize(width, height int)
}

// Controller owns the pointer and hover state. All methods must be called from the thread that
// drives the frame loop.
type Controller struct {
	cam     *scene.Camera
	rc      Raycaster
	nav     Navigator
	cursor  Cursor
	surface Surface
	log     *logger.Logger

	pointer mgl64.Vec2
	hovered *scene.Object
	style   CursorStyle
}

// New returns a controller with the pointer at the surface center and nothing hovered.
// nav, cursor and log may be nil.
func New(cam *scene.Camera, rc Raycaster, nav Navigator, cursor Cursor, log *logger.Logger) *Controller {
	return &Controller{cam: cam, rc: rc, nav: nav, cursor: cursor, log: log}
}

// SetSurface sets the target resized by Resize.
func (c *Controller) SetSurface(s Surface) {
	c.surface = s
}

// Pointer returns the last pointer position in normalized device coordinates.
func (c *Controller) Pointer() mgl64.Vec2 {
	return c.pointer
}

// Hovered returns the hovered object, or nil.
func (c *Controller) Hovered() *scene.Object {
	return c.hovered
}

// CursorStyle returns the style chosen by the last UpdateHover.
func (c *Controller) CursorStyle() CursorStyle {
	return c.style
}

// SetPointer stores an already normalized pointer position.
func (c *Controller) SetPointer(p mgl64.Vec2) {
	c.pointer = p
}

// PointerMove records a pointer position in surface pixels (origin top-left). A zero-sized
// surface is ignored.
func (c *Controller) PointerMove(x, y float64, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.pointer = mgl64.Vec2{
		x/float64(width)*2 - 1,
		-(y/float64(height))*2 + 1,
	}
}

// pick returns the nearest object under the current pointer.
func (c *Controller) pick() *scene.Object {
	if c.rc == nil {
		return nil
	}
	hits := c.rc.Cast(c.pointer, c.cam)
	if len(hits) == 0 {
		return nil
	}
	return hits[0].Object
}

// UpdateHover re-evaluates the hovered object. Run once per frame. At most one object is ever
// enlarged: the previous one is restored before the new one grows.
func (c *Controller) UpdateHover() {
	target := c.pick()
	if target != c.hovered {
		if c.hovered != nil {
			c.hovered.SetScale(NeutralScale)
		}
		if target != nil {
			target.SetScale(HoverScale)
		}
		c.hovered = target
	}
	c.style = CursorDefault
	if c.hovered != nil {
		c.style = CursorPointer
	}
	if c.cursor != nil {
		c.cursor.SetCursor(c.style)
	}
}

// Click casts a fresh ray and opens the nearest object's URL, if it has one.
// It reports whether a navigation was started.
func (c *Controller) Click() bool {
	target := c.pick()
	if target == nil || target.Payload.URL == "" {
		return false
	}
	c.log.Logf("open %s (%s)", target.Payload.URL, target.Payload.Name)
	if c.nav != nil {
		c.nav.Open(target.Payload.URL)
	}
	return true
}

// Resize updates the camera aspect ratio and projection and resizes the surface.
// A zero or negative size is ignored.
func (c *Controller) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.cam.Aspect = float64(width) / float64(height)
	c.cam.UpdateProjection()
	if c.surface != nil {
		c.surface.SetSize(width, height)
	}
	c.log.Logf("resize %dx%d", width, height)
}
