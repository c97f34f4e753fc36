// internal/entity/hero.go
package entity

import (
	"go-sheep-picker/internal/component"
	"go-sheep-picker/internal/config"
	"go-sheep-picker/pkg/geom"
)

var _ Movable = (*Hero)(nil)

// Hero — персонаж игрока. Двигается либо к точке клика, либо по клавишам;
// клавиши всегда важнее клика.
type Hero struct {
	position      geom.Vector
	radius        float64
	speed         float64
	direction     geom.Vector // сырой ввод с клавиатуры
	target        geom.Vector
	hasTarget     bool
	followerCount int
	arrival       float64
	bounds        Bounds
}

// NewHero создаёт героя в стартовой точке из конфигурации.
func NewHero(cfg *config.Config) *Hero {
	h := &Hero{
		radius:  cfg.HeroRadius,
		speed:   cfg.HeroSpeed,
		arrival: cfg.ArrivalEpsilon,
		bounds:  NewBounds(cfg),
	}
	h.Reset(cfg.HeroStart)
	return h
}

// Reset ставит героя в pos и сбрасывает ввод и группу.
func (h *Hero) Reset(pos geom.Vector) {
	h.position = pos
	h.direction = geom.Vector{}
	h.hasTarget = false
	h.followerCount = 0
}

// SetDirectionalInput задаёт направление с клавиатуры. Ненулевой ввод
// отменяет движение к точке.
func (h *Hero) SetDirectionalInput(xDir, yDir float64) {
	h.direction = geom.Vec(xDir, yDir)
	if !h.direction.IsZero() {
		h.hasTarget = false
	}
}

// MoveTo задаёт точку назначения. Пока зажаты клавиши направления, вызов
// игнорируется. Точка вне поля прижимается к его границе, иначе герой
// никогда бы до неё не дошёл.
func (h *Hero) MoveTo(target geom.Vector) {
	if !h.direction.IsZero() {
		return
	}
	h.target = h.bounds.Clamp(target, h.radius)
	h.hasTarget = true
}

// Update двигает героя на deltaTime кадров.
func (h *Hero) Update(deltaTime float64) {
	if !h.direction.IsZero() {
		h.hasTarget = false
		move := h.direction.Normalize().Scale(h.speed * deltaTime)
		h.position = h.bounds.Clamp(h.position.Add(move), h.radius)
		return
	}
	if !h.hasTarget {
		return
	}
	if geom.Distance(h.position, h.target) > h.arrival {
		h.position = stepToward(h.position, h.target, h.speed*deltaTime, h.bounds, h.radius)
	} else {
		h.hasTarget = false
	}
}

func (h *Hero) AddFollower() {
	h.followerCount++
}

// RemoveFollower уменьшает число последователей, но не ниже нуля.
func (h *Hero) RemoveFollower() {
	if h.followerCount > 0 {
		h.followerCount--
	}
}

func (h *Hero) FollowerCount() int {
	return h.followerCount
}

func (h *Hero) Position() geom.Vector {
	return h.position
}

func (h *Hero) Radius() float64 {
	return h.radius
}

// Target возвращает точку назначения, если она задана.
func (h *Hero) Target() (geom.Vector, bool) {
	return h.target, h.hasTarget
}

// Mode — текущий режим движения.
func (h *Hero) Mode() component.MovementMode {
	switch {
	case !h.direction.IsZero():
		return component.Directional
	case h.hasTarget:
		return component.Seeking
	default:
		return component.Idle
	}
}
