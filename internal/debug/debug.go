package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats is what the overlay can show besides FPS and heap size.
type Stats struct {
	Hovered     string // hovered link name, empty when none
	PixelWidth  int
	PixelHeight int
}

// Debug draws runtime overlays in the top-right corner. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	frameCount   uint32
	lines        []string
	memStats     runtime.MemStats
}

// New returns a Debug with all overlays hidden.
func New(showFPS, showMemAlloc bool) *Debug {
	return &Debug{ShowFPS: showFPS, ShowMemAlloc: showMemAlloc}
}

// Enabled reports whether anything is drawn.
func (d *Debug) Enabled() bool {
	return d.ShowFPS || d.ShowMemAlloc
}

// Draw renders the enabled overlays. FPS also shows the surface size in device pixels and the
// hovered link. Call after the scene in the draw loop.
func (d *Debug) Draw(st Stats) {
	if !d.Enabled() {
		return
	}
	d.frameCount++
	if d.lines == nil || d.frameCount%updateInterval == 0 {
		d.lines = d.lines[:0]
		if d.ShowFPS {
			d.lines = append(d.lines, fmt.Sprintf("FPS: %d", rl.GetFPS()))
			d.lines = append(d.lines, fmt.Sprintf("Surface: %dx%d", st.PixelWidth, st.PixelHeight))
			if st.Hovered != "" {
				d.lines = append(d.lines, "Hover: "+st.Hovered)
			}
		}
		if d.ShowMemAlloc {
			runtime.ReadMemStats(&d.memStats)
			d.lines = append(d.lines, fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024)))
		}
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range d.lines {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}
