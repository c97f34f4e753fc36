// internal/state/menu_state.go
package state

import (
	"go-sheep-picker/internal/config"
	"go-sheep-picker/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var menuInstructions = []string{
	"Herd the sheep into the yellow YARD!",
	"Move: WASD / arrows or click / tap",
	"Walk near sheep to collect up to 5 at once",
	"P - pause, M - music",
}

// MenuState — стартовый экран
type MenuState struct {
	sm         *StateMachine
	scene      *Scene
	playButton *ui.Button
}

func NewMenuState(sm *StateMachine, scene *Scene) *MenuState {
	return &MenuState{
		sm:         sm,
		scene:      scene,
		playButton: ui.NewCenteredButton(config.ScreenWidth/2, config.ScreenHeight/2+120, "PLAY", scene.Fonts.Face(config.HUDFontSize, true)),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	clicked := m.playButton.Update()
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.scene.Game.Start()
		m.sm.SetState(NewGameState(m.sm, m.scene))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.scene.DrawField(screen)
	ui.DrawOverlay(screen)
	_, top := ui.DrawCenterPanel(screen)

	titleFace := m.scene.Fonts.Face(config.TitleFontSize, true)
	ui.DrawCenteredText(screen, "SHEEP PICKER", titleFace, config.ScreenWidth/2, float64(top)+70, config.MenuAccentColor)

	face := m.scene.Fonts.Face(config.MessageFontSize, false)
	for i, line := range menuInstructions {
		ui.DrawCenteredText(screen, line, face, config.ScreenWidth/2, float64(top)+140+float64(i)*30, config.TextLightColor)
	}
	m.playButton.Draw(screen)
}

func (m *MenuState) Exit() {}
