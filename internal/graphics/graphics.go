package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	defaultWidth  = 1280
	defaultHeight = 720
)

// Options configures the window.
type Options struct {
	Title      string
	Width      int // ignored when Fullscreen
	Height     int
	Fullscreen bool
	TargetFPS  int
}

// Handlers are the callbacks driven by Run. Any of them may be nil.
// Resize, PointerMove and Click fire only when the matching input happened this frame;
// PointerMove and Resize receive logical screen sizes (the same space as mouse coordinates).
type Handlers struct {
	Resize      func(width, height int)
	PointerMove func(x, y float64, width, height int)
	Click       func()
	// Frame advances the animation and draws the 3D scene; Overlay draws 2D on top.
	Frame   func()
	Overlay func()
	// Hover runs after the frame is presented, once per frame.
	Hover func()
	// Close runs once before the window is destroyed, while the GL context is still alive.
	Close func()
}

// Run opens a resizable HiDPI window, calls setup with its size once the GL context exists, then
// loops until the window is closed: poll input, draw, evaluate hover.
func Run(opts Options, setup func(width, height int) Handlers) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
		w, h = 0, 0 // raylib uses the monitor size
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(w), int32(h), opts.Title)
	defer rl.CloseWindow()

	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}

	hs := setup(rl.GetScreenWidth(), rl.GetScreenHeight())
	if hs.Close != nil {
		defer hs.Close()
	}

	for !rl.WindowShouldClose() {
		pollInput(hs)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if hs.Frame != nil {
			hs.Frame()
		}
		if hs.Overlay != nil {
			hs.Overlay()
		}
		rl.EndDrawing()

		if hs.Hover != nil {
			hs.Hover()
		}
	}
}

// pollInput turns this frame's raylib input state into discrete events.
// A click is reported on release of the left button.
func pollInput(hs Handlers) {
	sw, sh := rl.GetScreenWidth(), rl.GetScreenHeight()
	if rl.IsWindowResized() && hs.Resize != nil {
		hs.Resize(sw, sh)
	}
	if d := rl.GetMouseDelta(); (d.X != 0 || d.Y != 0) && hs.PointerMove != nil {
		p := rl.GetMousePosition()
		hs.PointerMove(float64(p.X), float64(p.Y), sw, sh)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) && hs.Click != nil {
		hs.Click()
	}
}
