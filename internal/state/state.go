// internal/state/state.go
package state

import (
	"go-sheep-picker/internal/app"
	"go-sheep-picker/internal/assets"
	"go-sheep-picker/internal/config"
	"go-sheep-picker/internal/ui"
	"go-sheep-picker/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех экранов
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Scene — общие для всех экранов объекты: сессия, рендерер поля и шрифты.
type Scene struct {
	Game     *app.Game
	Renderer *render.FieldRenderer
	HUD      *ui.HUDPanel
	Fonts    *assets.FontManager
}

// NewScene собирает сцену вокруг готовой сессии.
func NewScene(g *app.Game, fonts *assets.FontManager) *Scene {
	colors := &render.FieldColors{
		Background:   config.FieldColor,
		Border:       config.FieldBorderColor,
		Yard:         config.YardColor,
		YardGlow:     config.YardGlowColor,
		YardBorder:   config.YardBorderColor,
		Hero:         config.HeroColor,
		Animal:       config.AnimalColor,
		FollowerRing: config.FollowerRingColor,
		StrokeWidth:  float32(config.StrokeWidth),
	}
	return &Scene{
		Game:     g,
		Renderer: render.NewFieldRenderer(g, colors, config.ScreenWidth, config.ScreenHeight),
		HUD:      ui.NewHUDPanel(fonts),
		Fonts:    fonts,
	}
}

// DrawField рисует поле с сущностями без HUD.
func (s *Scene) DrawField(screen *ebiten.Image) {
	s.Renderer.Draw(screen, s.Game)
}

// StateMachine — структура для управления экранами
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState выходит из текущего экрана и входит в новый
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current возвращает активный экран
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
