// internal/state/gameover_state.go
package state

import (
	"fmt"

	"go-sheep-picker/internal/config"
	"go-sheep-picker/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState — итоговый экран с кнопкой новой партии.
type GameOverState struct {
	sm          *StateMachine
	scene       *Scene
	retryButton *ui.Button
}

func NewGameOverState(sm *StateMachine, scene *Scene) *GameOverState {
	return &GameOverState{
		sm:          sm,
		scene:       scene,
		retryButton: ui.NewCenteredButton(config.ScreenWidth/2, config.ScreenHeight/2+100, "PLAY AGAIN", scene.Fonts.Face(config.HUDFontSize, true)),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	// музыка продолжает затухать после конца партии
	s.scene.Game.Update(deltaTime)

	if s.retryButton.Update() || inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.scene.Game.Restart()
		s.sm.SetState(NewGameState(s.sm, s.scene))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.scene.DrawField(screen)
	ui.DrawOverlay(screen)
	_, top := ui.DrawCenterPanel(screen)

	titleFace := s.scene.Fonts.Face(config.TitleFontSize, true)
	ui.DrawCenteredText(screen, "GAME OVER", titleFace, config.ScreenWidth/2, float64(top)+90, config.GameOverColor)

	face := s.scene.Fonts.Face(config.TimerFontSize, false)
	score := fmt.Sprintf("Final Score: %d", s.scene.Game.Score())
	ui.DrawCenteredText(screen, score, face, config.ScreenWidth/2, float64(top)+190, config.TextLightColor)

	s.retryButton.Draw(screen)
}

func (s *GameOverState) Exit() {}
