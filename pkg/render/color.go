// pkg/render/color.go
package render

import "image/color"

// FieldColors holds the palette used to draw the playfield and its entities.
type FieldColors struct {
	Background   color.RGBA
	Border       color.RGBA
	Yard         color.RGBA
	YardGlow     color.RGBA
	YardBorder   color.RGBA
	Hero         color.RGBA
	Animal       color.RGBA
	FollowerRing color.RGBA
	StrokeWidth  float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its opacity replaced by alpha in [0,1].
func WithAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
}
