// Package labeltex rasterizes the text labels painted on the social cubes.
package labeltex

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"

	"github.com/anthonynsimon/bild/blur"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Options describes one label raster. The image is always Size×Size with a transparent background.
type Options struct {
	Font       *opentype.Font // nil = Go Bold
	Size       int
	FontSize   float64
	Color      color.Color
	GlowRadius float64 // 0 disables the glow
	GlowAlpha  float64 // glow opacity in [0,1]
}

// DefaultOptions: 256px square, bold 60px white text with a faint glow.
func DefaultOptions() Options {
	return Options{
		Size:       256,
		FontSize:   60,
		Color:      color.White,
		GlowRadius: 6,
		GlowAlpha:  0.35,
	}
}

type faceKey struct {
	font *opentype.Font
	size float64
}

var (
	boldOnce sync.Once
	boldFont *opentype.Font
	boldErr  error

	facesMu sync.Mutex
	faces   = map[faceKey]font.Face{}
)

// LoadFont parses a TrueType or OpenType file.
func LoadFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return f, nil
}

func face(f *opentype.Font, size float64) (font.Face, error) {
	if f == nil {
		boldOnce.Do(func() {
			boldFont, boldErr = opentype.Parse(gobold.TTF)
		})
		if boldErr != nil {
			return nil, boldErr
		}
		f = boldFont
	}
	key := faceKey{font: f, size: size}
	facesMu.Lock()
	defer facesMu.Unlock()
	if ff, ok := faces[key]; ok {
		return ff, nil
	}
	ff, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	faces[key] = ff
	return ff, nil
}

// Render draws text centered horizontally and vertically. Text wider than the image is clipped
// on both sides. An empty string yields a fully transparent image.
func Render(text string, opts Options) *image.RGBA {
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultOptions().FontSize
	}
	if opts.Color == nil {
		opts.Color = color.White
	}
	bounds := image.Rect(0, 0, opts.Size, opts.Size)
	dst := image.NewRGBA(bounds)
	if text == "" {
		return dst
	}
	f, err := face(opts.Font, opts.FontSize)
	if err != nil {
		return dst
	}

	glyphs := image.NewRGBA(bounds)
	d := &font.Drawer{Dst: glyphs, Src: image.NewUniform(opts.Color), Face: f}
	m := f.Metrics()
	width := d.MeasureString(text)
	center := fixed.I(opts.Size / 2)
	d.Dot = fixed.Point26_6{
		X: center - width/2,
		Y: center + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(text)

	if opts.GlowRadius > 0 && opts.GlowAlpha > 0 {
		glow := blur.Gaussian(glyphs, opts.GlowRadius)
		fade(glow, opts.GlowAlpha)
		draw.Draw(dst, bounds, glow, image.Point{}, draw.Src)
	}
	draw.Draw(dst, bounds, glyphs, image.Point{}, draw.Over)
	return dst
}

// fade scales every premultiplied channel by a.
func fade(img *image.RGBA, a float64) {
	if a >= 1 {
		return
	}
	for i, v := range img.Pix {
		img.Pix[i] = uint8(float64(v) * a)
	}
}
