// internal/ui/button.go
package ui

import (
	"image/color"

	"go-sheep-picker/internal/config"
	"go-sheep-picker/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       geom.Rect
	Text       string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA
	Face       font.Face

	hovered  bool
	touchIDs []ebiten.TouchID
}

// NewButton создает новую кнопку с цветами из конфига.
func NewButton(rect geom.Rect, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		Face:       face,
	}
}

// NewCenteredButton создает кнопку стандартного размера с центром в (cx, cy).
func NewCenteredButton(cx, cy float64, label string, face font.Face) *Button {
	rect := geom.NewRect(cx-config.ButtonWidth/2, cy-config.ButtonHeight/2, config.ButtonWidth, config.ButtonHeight)
	return NewButton(rect, label, face)
}

// Update обновляет подсветку и возвращает true, если по кнопке кликнули
// мышью или тапнули в этом кадре.
func (b *Button) Update() bool {
	x, y := ebiten.CursorPosition()
	b.hovered = b.contains(x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && b.hovered {
		return true
	}
	b.touchIDs = inpututil.AppendJustPressedTouchIDs(b.touchIDs[:0])
	for _, id := range b.touchIDs {
		if b.contains(ebiten.TouchPosition(id)) {
			return true
		}
	}
	return false
}

func (b *Button) contains(x, y int) bool {
	return b.Rect.Contains(geom.Vec(float64(x), float64(y)))
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.hovered {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.X), float32(b.Rect.Y)
	w, h := float32(b.Rect.Width), float32(b.Rect.Height)
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.TextLightColor, false)

	center := b.Rect.Center()
	DrawCenteredText(screen, b.Text, b.Face, center.X, center.Y, b.TextColor)
}
