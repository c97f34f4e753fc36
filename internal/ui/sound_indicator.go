// internal/ui/sound_indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-sheep-picker/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SoundIndicator показывает громкость музыки кружком: заливка тем плотнее,
// чем громче. Перечёркнут, когда звук выключен.
type SoundIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewSoundIndicator(x, y, radius float32) *SoundIndicator {
	return &SoundIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор. volume — текущая громкость в [0,1].
func (i *SoundIndicator) Draw(screen *ebiten.Image, volume float64, muted bool) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	radius := i.Radius * float32(scale)

	fill := color.NRGBA{
		R: config.TextLightColor.R,
		G: config.TextLightColor.G,
		B: config.TextLightColor.B,
		A: uint8(math.Min(1, 0.2+volume*2) * 255),
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, radius, fill, true)
	vector.StrokeCircle(screen, i.X, i.Y, radius, 2, config.TextLightColor, true)
	if muted {
		d := radius * 0.7
		vector.StrokeLine(screen, i.X-d, i.Y-d, i.X+d, i.Y+d, 3, config.CriticalColor, true)
	}
}

// HandleClick запускает анимацию отклика.
func (i *SoundIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
