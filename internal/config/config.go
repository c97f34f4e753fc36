// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 800

	FramesPerSecond = 60.0 // deltaTime ядра измеряется в кадрах при 60 FPS
	MaxDeltaTime    = 0.06 // секунды

	HUDFontSize     = 24
	TimerFontSize   = 32
	TitleFontSize   = 56
	MessageFontSize = 20

	PanelWidth   = 600
	PanelHeight  = 400
	ButtonWidth  = 200
	ButtonHeight = 60

	ClickCooldown = 300 // мс
)

var (
	FieldColor        = color.RGBA{34, 139, 34, 255} // 0x228B22
	FieldBorderColor  = color.RGBA{20, 90, 20, 255}
	YardColor         = color.RGBA{255, 255, 0, 255}
	YardGlowColor     = color.RGBA{255, 102, 0, 255}
	YardBorderColor   = color.RGBA{255, 255, 255, 255}
	HeroColor         = color.RGBA{255, 0, 0, 255}
	AnimalColor       = color.RGBA{255, 255, 255, 255}
	FollowerRingColor = color.RGBA{255, 215, 0, 255}
	TextLightColor    = color.RGBA{255, 255, 255, 255}
	MessageColor      = color.RGBA{255, 255, 0, 255}
	WarningColor      = color.RGBA{255, 170, 0, 255} // 0xffaa00
	CriticalColor     = color.RGBA{255, 0, 0, 255}
	GroupFullColor    = color.RGBA{255, 102, 0, 255} // 0xff6600
	OverlayColor      = color.RGBA{0, 0, 0, 178}
	PanelColor        = color.RGBA{42, 42, 42, 255}
	MenuAccentColor   = color.RGBA{76, 175, 80, 255} // 0x4CAF50
	ButtonColor       = color.RGBA{76, 175, 80, 255}
	ButtonHoverColor  = color.RGBA{102, 187, 106, 255}
	GameOverColor     = color.RGBA{255, 170, 0, 255}
	StrokeWidth       = 2.0
)
