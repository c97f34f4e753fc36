// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-sheep-picker/internal/app"
	"go-sheep-picker/internal/assets"
	"go-sheep-picker/internal/config"
	"go-sheep-picker/internal/state"
	"go-sheep-picker/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

// Update переводит прошедшие секунды в кадры при 60 FPS, как ожидает ядро.
func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime * config.FramesPerSecond)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	envPath := flag.String("env", ".env", "path to an optional .env file")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(cfg.PprofAddr, nil))
		}()
	}

	rng := utils.NewPRNGService(cfg.Seed)
	log.Printf("Using seed %d", rng.Seed())

	fonts, err := assets.NewFontManager()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	defer fonts.Close()

	game := app.NewGame(cfg, rng)
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, state.NewScene(game, fonts)))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Sheep Picker")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
