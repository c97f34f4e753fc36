// internal/entity/animal.go
package entity

import (
	"go-sheep-picker/internal/component"
	"go-sheep-picker/internal/config"
	"go-sheep-picker/internal/types"
	"go-sheep-picker/internal/utils"
	"go-sheep-picker/pkg/geom"
)

var _ Movable = (*Animal)(nil)

// Animal — животное, которое нужно загнать в загон.
//
// Переходы состояний:
//
//	Patrolling -> Following  (StartFollowing, вызывает оркестратор)
//	Following  -> Scored     (MarkScored, только один раз)
//
// Обратных переходов нет.
type Animal struct {
	id           types.EntityID
	position     geom.Vector
	radius       float64
	speed        float64
	state        component.AnimalState
	patrolTarget geom.Vector
	patrolWait   float64 // кадры до следующего шага патруля

	cfg    *config.Config
	bounds Bounds
	rng    utils.Rand
}

// NewAnimal создаёт животное в pos и сразу выбирает первую цель патруля.
func NewAnimal(id types.EntityID, pos geom.Vector, cfg *config.Config, rng utils.Rand) *Animal {
	a := &Animal{
		id:       id,
		position: pos,
		radius:   cfg.AnimalRadius,
		speed:    cfg.AnimalSpeed,
		state:    component.Patrolling,
		cfg:      cfg,
		bounds:   NewBounds(cfg),
		rng:      rng,
	}
	a.pickPatrolTarget()
	a.patrolWait = a.randomWait()
	return a
}

// Update двигает животное в зависимости от состояния. hero читается только
// на время вызова.
func (a *Animal) Update(deltaTime float64, hero Movable) {
	switch a.state {
	case component.Patrolling:
		a.patrol(deltaTime)
	case component.Following:
		a.follow(hero.Position(), deltaTime)
	}
}

func (a *Animal) patrol(deltaTime float64) {
	if a.patrolWait > 0 {
		a.patrolWait -= deltaTime
		return
	}

	if geom.Distance(a.position, a.patrolTarget) <= a.cfg.ArrivalEpsilon {
		a.pickPatrolTarget()
		a.patrolWait = a.randomWait()
		return
	}

	dir := geom.Subtract(a.patrolTarget, a.position).Normalize()
	next := a.position.Add(dir.Scale(a.speed * a.cfg.PatrolSpeedRatio * deltaTime))

	// Без героя в загон не заходим. Если животное уже внутри запретной
	// зоны (поставлено туда явно), даём ему выйти.
	exclusion := a.cfg.YardExclusion()
	if exclusion.Contains(next) && !exclusion.Contains(a.position) {
		a.pickPatrolTarget()
		return
	}
	a.position = a.bounds.Clamp(next, a.radius)
}

func (a *Animal) follow(heroPos geom.Vector, deltaTime float64) {
	if geom.Distance(a.position, heroPos) <= a.cfg.FollowSlack {
		return
	}
	a.position = stepToward(a.position, heroPos, a.speed*deltaTime, a.bounds, a.radius)
}

// pickPatrolTarget ищет случайную точку вне загона. После PlacementTries
// неудач берёт точку рядом с текущей позицией.
func (a *Animal) pickPatrolTarget() {
	area := a.cfg.SpawnArea()
	exclusion := a.cfg.YardExclusion()
	for i := 0; i < a.cfg.PlacementTries; i++ {
		p := geom.Vec(
			area.X+a.rng.Float64()*area.Width,
			area.Y+a.rng.Float64()*area.Height,
		)
		if !exclusion.Contains(p) {
			a.patrolTarget = p
			return
		}
	}

	w := a.cfg.PatrolWander
	near := a.position.Add(geom.Vec(utils.Range(a.rng, -w, w), utils.Range(a.rng, -w, w)))
	a.patrolTarget = area.Clamp(near)
}

func (a *Animal) randomWait() float64 {
	return utils.Range(a.rng, a.cfg.PatrolWaitMin, a.cfg.PatrolWaitMax)
}

// StartFollowing переводит животное из патруля в следование за героем.
// Возвращает false, если животное уже не патрулирует.
func (a *Animal) StartFollowing() bool {
	if a.state != component.Patrolling {
		return false
	}
	a.state = component.Following
	return true
}

// MarkScored засчитывает доставку. Срабатывает только для следующего за
// героем животного и только один раз.
func (a *Animal) MarkScored() bool {
	if a.state != component.Following {
		return false
	}
	a.state = component.Scored
	return true
}

// IsInYard — животное идёт за героем и находится в загоне.
func (a *Animal) IsInYard(yard *Yard) bool {
	return a.state == component.Following && yard.Contains(a.position)
}

// ShouldBeRemoved — животное засчитано и ждёт удаления.
func (a *Animal) ShouldBeRemoved() bool {
	return a.state == component.Scored
}

func (a *Animal) ID() types.EntityID { return a.id }
func (a *Animal) Position() geom.Vector { return a.position }
func (a *Animal) Radius() float64 { return a.radius }
func (a *Animal) State() component.AnimalState { return a.state }
func (a *Animal) IsFollowing() bool { return a.state == component.Following }
func (a *Animal) IsScored() bool { return a.state == component.Scored }
func (a *Animal) PatrolTarget() geom.Vector { return a.patrolTarget }
func (a *Animal) PatrolWait() float64 { return a.patrolWait }
