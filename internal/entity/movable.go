// internal/entity/movable.go
package entity

import (
	"go-sheep-picker/internal/config"
	"go-sheep-picker/pkg/geom"
)

// Movable — общее для героя и животных: позиция и радиус.
type Movable interface {
	Position() geom.Vector
	Radius() float64
}

// Bounds — ограничение движения по полю с учётом рамки и отступа.
type Bounds struct {
	Field   geom.Rect
	Border  float64
	Padding float64
}

// NewBounds берёт поле и отступы из конфигурации.
func NewBounds(cfg *config.Config) Bounds {
	return Bounds{Field: cfg.Field, Border: cfg.FieldBorder, Padding: cfg.EdgePadding}
}

// Inner — область, в которой может находиться центр сущности радиуса radius.
func (b Bounds) Inner(radius float64) geom.Rect {
	return b.Field.Inset(b.Border + radius + b.Padding)
}

// Clamp удерживает центр сущности внутри поля.
func (b Bounds) Clamp(p geom.Vector, radius float64) geom.Vector {
	return b.Inner(radius).Clamp(p)
}

// stepToward сдвигает from к to на step и ограничивает результат полем.
func stepToward(from, to geom.Vector, step float64, b Bounds, radius float64) geom.Vector {
	dir := geom.Subtract(to, from).Normalize()
	return b.Clamp(from.Add(dir.Scale(step)), radius)
}
