// internal/ui/panel.go
package ui

import (
	"go-sheep-picker/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawOverlay затемняет весь экран.
func DrawOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
}

// DrawCenterPanel рисует стандартную панель меню по центру экрана и
// возвращает координаты её левого верхнего угла.
func DrawCenterPanel(screen *ebiten.Image) (float32, float32) {
	x := float32(config.ScreenWidth-config.PanelWidth) / 2
	y := float32(config.ScreenHeight-config.PanelHeight) / 2
	vector.DrawFilledRect(screen, x, y, config.PanelWidth, config.PanelHeight, config.PanelColor, false)
	vector.StrokeRect(screen, x, y, config.PanelWidth, config.PanelHeight, 3, config.MenuAccentColor, false)
	return x, y
}
