package graphics

import (
	"social-landing/internal/interaction"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Browser opens URLs in the system's default browser. raylib gives no feedback, so a blocked
// or failed open goes unnoticed.
type Browser struct{}

// Open implements interaction.Navigator.
func (Browser) Open(url string) {
	rl.OpenURL(url)
}

// SystemCursor sets the OS mouse cursor over the window.
type SystemCursor struct{}

// SetCursor implements interaction.Cursor.
func (SystemCursor) SetCursor(style interaction.CursorStyle) {
	switch style {
	case interaction.CursorPointer:
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	default:
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}
