package primitives

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LoadTexture uploads img as a mipmapped, trilinear-filtered texture. Needs a live GL context.
// A nil image returns the zero texture, which Draw treats as "no texture".
func LoadTexture(img *image.RGBA) rl.Texture2D {
	if img == nil {
		return rl.Texture2D{}
	}
	cpu := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(cpu)
	rl.UnloadImage(cpu)
	if !rl.IsTextureValid(tex) {
		return tex
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	return tex
}
