// internal/ui/hud_panel.go
package ui

import (
	"image/color"
	"math"

	"go-sheep-picker/internal/app"
	"go-sheep-picker/internal/assets"
	"go-sheep-picker/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	hudMargin       = 20
	hudLineHeight   = 32
	bannerHeight    = 44
	bannerSlide     = 6.0 // пикселей за кадр
	bannerTopOffset = 70
)

// HUDPanel выводит счёт, размер группы, таймер и выезжающий баннер с
// подсказкой, когда группа заполнена.
type HUDPanel struct {
	face        font.Face
	timerFace   font.Face
	messageFace font.Face

	bannerY       float64
	bannerTargetY float64
}

// NewHUDPanel создаёт панель; баннер изначально спрятан над экраном.
func NewHUDPanel(fonts *assets.FontManager) *HUDPanel {
	return &HUDPanel{
		face:          fonts.Face(config.HUDFontSize, false),
		timerFace:     fonts.Face(config.TimerFontSize, true),
		messageFace:   fonts.Face(config.MessageFontSize, true),
		bannerY:       -bannerHeight,
		bannerTargetY: -bannerHeight,
	}
}

// Update анимирует баннер.
func (p *HUDPanel) Update(hud app.HUD, deltaTime float64) {
	if hud.GroupFull {
		p.bannerTargetY = bannerTopOffset
	} else {
		p.bannerTargetY = -bannerHeight
	}

	diff := p.bannerTargetY - p.bannerY
	step := bannerSlide * deltaTime
	if math.Abs(diff) <= step {
		p.bannerY = p.bannerTargetY
		return
	}
	p.bannerY += math.Copysign(step, diff)
}

// Draw рисует HUD.
func (p *HUDPanel) Draw(screen *ebiten.Image, hud app.HUD) {
	DrawTextWithOutline(screen, hud.Score, p.face, hudMargin, hudMargin+hudLineHeight, config.TextLightColor, color.Black, 1)

	collectedColor := config.TextLightColor
	if hud.GroupFull {
		collectedColor = config.GroupFullColor
	}
	DrawTextWithOutline(screen, hud.Collected, p.face, hudMargin, hudMargin+hudLineHeight*2, collectedColor, color.Black, 1)

	DrawCenteredText(screen, hud.Clock, p.timerFace, config.ScreenWidth/2, hudMargin+hudLineHeight/2, clockColor(hud.Urgency))

	if p.bannerY > -bannerHeight {
		p.drawBanner(screen, hud.Message)
	}
}

func (p *HUDPanel) drawBanner(screen *ebiten.Image, message string) {
	if message == "" {
		message = app.GroupFullMessage
	}
	width := float32(config.PanelWidth) * 0.6
	x := (float32(config.ScreenWidth) - width) / 2
	y := float32(p.bannerY)
	vector.DrawFilledRect(screen, x, y, width, bannerHeight, config.OverlayColor, false)
	vector.StrokeRect(screen, x, y, width, bannerHeight, 2, config.GroupFullColor, false)
	DrawCenteredText(screen, message, p.messageFace, config.ScreenWidth/2, p.bannerY+bannerHeight/2, config.MessageColor)
}

func clockColor(u app.Urgency) color.Color {
	switch u {
	case app.UrgencyCritical:
		return config.CriticalColor
	case app.UrgencyWarning:
		return config.WarningColor
	default:
		return config.TextLightColor
	}
}
