// internal/state/pause_state.go
package state

import (
	"time"

	"go-sheep-picker/internal/config"
	"go-sheep-picker/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает партию поверх последнего кадра игры.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		button := s.previousState.pauseButton
		if button.IsClicked(x, y) && time.Since(button.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			unpause = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.previousState.toggleMute()
	}

	// на паузе ядро только доигрывает затухание музыки
	s.previousState.scene.Game.Update(deltaTime)

	if unpause {
		s.previousState.pauseButton.TogglePause()
		s.previousState.scene.Game.TogglePause()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	ui.DrawOverlay(screen)

	face := s.previousState.scene.Fonts.Face(config.TitleFontSize, true)
	ui.DrawCenteredText(screen, "PAUSED", face, config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
