package labeltex

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func alphaSum(img *image.RGBA, r image.Rectangle) int {
	sum := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sum += int(img.RGBAAt(x, y).A)
		}
	}
	return sum
}

func TestRenderSizeAndTransparentCorners(t *testing.T) {
	img := Render("Twitch", DefaultOptions())
	if img.Bounds().Dx() != 256 || img.Bounds().Dy() != 256 {
		t.Fatalf("expected 256x256, got %v", img.Bounds())
	}
	corners := []image.Rectangle{
		image.Rect(0, 0, 16, 16),
		image.Rect(240, 0, 256, 16),
		image.Rect(0, 240, 16, 256),
		image.Rect(240, 240, 256, 256),
	}
	for _, c := range corners {
		if s := alphaSum(img, c); s != 0 {
			t.Fatalf("corner %v should be transparent, alpha sum %d", c, s)
		}
	}
	if s := alphaSum(img, image.Rect(64, 96, 192, 160)); s == 0 {
		t.Fatalf("center band should contain glyph pixels")
	}
}

func TestRenderCentered(t *testing.T) {
	opts := DefaultOptions()
	opts.GlowRadius = 0
	img := Render("Thangs", opts)
	left := alphaSum(img, image.Rect(0, 0, 128, 256))
	right := alphaSum(img, image.Rect(128, 0, 256, 256))
	if left == 0 || right == 0 {
		t.Fatalf("text should straddle the vertical center line: left=%d right=%d", left, right)
	}
	top := alphaSum(img, image.Rect(0, 0, 256, 128))
	bottom := alphaSum(img, image.Rect(0, 128, 256, 256))
	if top == 0 || bottom == 0 {
		t.Fatalf("text should straddle the horizontal center line: top=%d bottom=%d", top, bottom)
	}
}

func TestRenderEmpty(t *testing.T) {
	img := Render("", DefaultOptions())
	if s := alphaSum(img, img.Bounds()); s != 0 {
		t.Fatalf("empty label should be transparent, alpha sum %d", s)
	}
}

func TestGlowWidensCoverage(t *testing.T) {
	plain := DefaultOptions()
	plain.GlowRadius = 0
	covered := func(img *image.RGBA) int {
		n := 0
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] > 0 {
				n++
			}
		}
		return n
	}
	a := covered(Render("TikTok", plain))
	b := covered(Render("TikTok", DefaultOptions()))
	if b <= a {
		t.Fatalf("glow should cover more pixels: plain=%d glow=%d", a, b)
	}
}

func TestLoadFont(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFont(path)
	if err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	opts := DefaultOptions()
	opts.Font = f
	img := Render("YouTube", opts)
	if s := alphaSum(img, img.Bounds()); s == 0 {
		t.Fatalf("custom font should draw glyphs")
	}

	bad := filepath.Join(dir, "bad.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFont(bad); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := LoadFont(filepath.Join(dir, "missing.ttf")); err == nil {
		t.Fatalf("expected read error")
	}
}
