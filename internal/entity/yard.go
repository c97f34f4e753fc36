// internal/entity/yard.go
package entity

import (
	"go-sheep-picker/internal/config"
	"go-sheep-picker/pkg/geom"
)

// Yard — загон. Кроме прямоугольника хранит яркость подсветки, которая
// пульсирует, пока группа героя полная.
type Yard struct {
	rect    geom.Rect
	glow    float64
	glowDir float64

	floor, ceiling float64
	pulseRate      float64
	decayRate      float64
}

func NewYard(cfg *config.Config) *Yard {
	return &Yard{
		rect:      cfg.Yard,
		glowDir:   1,
		floor:     cfg.GlowFloor,
		ceiling:   cfg.GlowCeiling,
		pulseRate: cfg.GlowPulseRate,
		decayRate: cfg.GlowDecayRate,
	}
}

// Contains — точка внутри загона (границы включительно).
func (y *Yard) Contains(p geom.Vector) bool {
	return y.rect.Contains(p)
}

func (y *Yard) Rect() geom.Rect {
	return y.rect
}

// Glow — яркость подсветки в [0, 1].
func (y *Yard) Glow() float64 {
	return y.glow
}

// SetHighlight обновляет подсветку. При полной группе яркость ходит между
// floor и ceiling, иначе гаснет до нуля.
func (y *Yard) SetHighlight(isGroupFull bool, deltaTime float64) {
	if !isGroupFull {
		y.glow -= y.decayRate * deltaTime
		if y.glow < 0 {
			y.glow = 0
		}
		return
	}

	y.glow += y.glowDir * y.pulseRate * deltaTime
	if y.glow >= y.ceiling {
		y.glow = y.ceiling
		y.glowDir = -1
	} else if y.glow <= y.floor {
		y.glow = y.floor
		y.glowDir = 1
	}
}

// Reset гасит подсветку.
func (y *Yard) Reset() {
	y.glow = 0
	y.glowDir = 1
}
