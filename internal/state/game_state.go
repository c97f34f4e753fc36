// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	"go-sheep-picker/internal/config"
	"go-sheep-picker/internal/ui"
	"go-sheep-picker/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	cornerButtonSize   = 18
	cornerButtonOffset = 36
)

// GameState — экран идущей партии: ввод, обновление ядра, отрисовка
type GameState struct {
	sm          *StateMachine
	scene       *Scene
	pauseButton *ui.PauseButton
	sound       *ui.SoundIndicator
	touchIDs    []ebiten.TouchID
	showDebug   bool
}

func NewGameState(sm *StateMachine, scene *Scene) *GameState {
	return &GameState{
		sm:    sm,
		scene: scene,
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth-cornerButtonOffset),
			cornerButtonOffset,
			cornerButtonSize,
			config.TextLightColor,
			config.MenuAccentColor,
		),
		sound: ui.NewSoundIndicator(
			float32(config.ScreenWidth-cornerButtonOffset*2-10),
			cornerButtonOffset,
			cornerButtonSize*0.7,
		),
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	game := g.scene.Game

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.toggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}

	g.handleKeyboard()
	if g.handlePointer() {
		return
	}

	game.Update(deltaTime)
	g.scene.Renderer.Update(deltaTime)
	g.scene.HUD.Update(game.HUD(), deltaTime)

	if game.IsGameOver() {
		g.sm.SetState(NewGameOverState(g.sm, g.scene))
	}
}

// handleKeyboard собирает направление из WASD и стрелок.
func (g *GameState) handleKeyboard() {
	var x, y float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		x--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		x++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		y++
	}
	g.scene.Game.SetHeroDirection(x, y)
}

// handlePointer обрабатывает клики и тапы. Возвращает true, если экран
// сменился и кадр дальше обрабатывать не нужно.
func (g *GameState) handlePointer() bool {
	var points []geom.Vector
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if g.handleUIClick(x, y) {
				return true
			}
		}
		points = append(points, geom.Vec(float64(x), float64(y)))
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if g.handleUIClick(x, y) {
			return true
		}
		points = append(points, geom.Vec(float64(x), float64(y)))
	}

	// удерживаемая кнопка мыши ведёт героя за курсором
	for _, p := range points {
		g.scene.Game.MoveHeroTo(p)
	}
	return false
}

func (g *GameState) handleUIClick(x, y int) bool {
	if g.pauseButton.IsClicked(x, y) {
		if time.Since(g.pauseButton.LastToggleTime) >= time.Duration(config.ClickCooldown)*time.Millisecond {
			g.pause()
		}
		return true
	}
	return false
}

func (g *GameState) pause() {
	g.pauseButton.TogglePause()
	g.scene.Game.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) toggleMute() {
	g.scene.Game.ToggleMute()
	g.sound.HandleClick()
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.scene.DrawField(screen)
	g.drawUI(screen)
}

func (g *GameState) drawUI(screen *ebiten.Image) {
	game := g.scene.Game
	g.scene.HUD.Draw(screen, game.HUD())
	g.pauseButton.Draw(screen)
	g.sound.Draw(screen, game.MusicVolume(), game.Music.Muted())

	if g.showDebug {
		hero := game.Hero().Position()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.0f FPS: %.0f\nAnimals: %d Hero: (%.0f, %.0f)\nVolume: %.2f",
			ebiten.ActualTPS(), ebiten.ActualFPS(), len(game.Animals()), hero.X, hero.Y, game.MusicVolume()), 10, config.ScreenHeight-60)
	}
}

func (g *GameState) Exit() {
	g.scene.Game.SetHeroDirection(0, 0)
}
