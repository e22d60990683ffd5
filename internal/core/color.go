package core

// RGBA is a straight (non-premultiplied) 8-bit color sampled from sprite
// sheet pixels. Alpha 0 means fully transparent; any non-zero alpha is
// treated as opaque by the compositor.
type RGBA struct {
	R, G, B, A uint8
}

// Opaque returns true if the pixel contributes color when composited.
func (c RGBA) Opaque() bool {
	return c.A > 0
}

// RGB builds a fully opaque color.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// HighlightColor is the bright cyan that pure-black outline pixels are
// remapped to while a sprite is highlighted for pickup.
var HighlightColor = RGB(127, 255, 255)

// IsOutline reports whether a pixel is a pure-black, non-transparent outline
// pixel eligible for highlight remapping.
func (c RGBA) IsOutline() bool {
	return c.R == 0 && c.G == 0 && c.B == 0 && c.A > 0
}
