// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCenteredText рисует строку так, чтобы её центр был в (cx, cy).
func DrawCenteredText(screen *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := int(cx) - bounds.Dx()/2 - bounds.Min.X
	y := int(cy) - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}

// DrawTextWithOutline рисует текст с обводкой заданной толщины.
func DrawTextWithOutline(screen *ebiten.Image, s string, face font.Face, x, y int, clr, outline color.Color, thickness int) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, y+dy, outline)
		}
	}
	text.Draw(screen, s, face, x, y, clr)
}
