// internal/app/game.go
package app

import (
	"log"

	"go-sheep-picker/internal/component"
	"go-sheep-picker/internal/config"
	"go-sheep-picker/internal/entity"
	"go-sheep-picker/internal/event"
	"go-sheep-picker/internal/system"
	"go-sheep-picker/internal/utils"
	"go-sheep-picker/pkg/geom"
)

var _ system.SpawnContext = (*Game)(nil)

// Game holds the session state and runs the per-frame rules.
// Единственный владелец героя, загона и списка животных.
type Game struct {
	World           *entity.World
	Spawner         *system.AnimalSpawner
	Music           *system.MusicFader
	EventDispatcher *event.Dispatcher

	cfg       *config.Config
	rng       utils.Rand
	state     component.GameState
	groupFull bool
}

// NewGame создаёт сессию в фазе NotStarted с начальной популяцией животных.
func NewGame(cfg config.Config, rng utils.Rand) *Game {
	c := cfg
	g := &Game{
		World:           entity.NewWorld(&c),
		Music:           system.NewMusicFader(c.MusicFadeSeconds),
		EventDispatcher: event.NewDispatcher(),
		cfg:             &c,
		rng:             rng,
	}
	g.Spawner = system.NewAnimalSpawner(g, rng, c.SpawnIntervalMin, c.SpawnIntervalMax)
	g.state = component.GameState{Phase: component.NotStarted, TimeLeft: c.GameDuration}
	g.spawnInitialAnimals()
	return g
}

// Start переводит сессию в игру и запускает таймер.
func (g *Game) Start() {
	if g.state.Phase == component.Playing || g.state.Phase == component.Paused {
		return
	}
	log.Println("Starting game...")
	g.state.Phase = component.Playing
	g.state.TimeLeft = g.cfg.GameDuration
	g.Music.FadeIn(g.cfg.MusicFadedVolume, g.cfg.MusicNormalVolume)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameStarted})
}

// Restart — новая партия после окончания предыдущей.
func (g *Game) Restart() {
	g.Reset()
	g.Start()
}

// Reset сбрасывает счёт, героя и животных. Фаза становится NotStarted.
func (g *Game) Reset() {
	g.state = component.GameState{Phase: component.NotStarted, TimeLeft: g.cfg.GameDuration}
	g.World.Hero.Reset(g.cfg.HeroStart)
	for _, a := range g.World.ClearAnimals() {
		g.EventDispatcher.Dispatch(event.Event{Type: event.AnimalRemoved, Data: a.ID()})
	}
	g.World.Yard.Reset()
	g.Spawner.Reset()
	g.setGroupFull(false)
	g.spawnInitialAnimals()
	g.EventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: 0})
}

// Update progresses the game by one frame. deltaTime — в кадрах при 60 FPS.
func (g *Game) Update(deltaTime float64) {
	g.Music.Update(deltaTime)
	if g.state.Phase != component.Playing {
		return
	}

	if g.updateTimer(deltaTime) {
		return
	}

	hero := g.World.Hero
	hero.Update(deltaTime)
	g.Spawner.Update(deltaTime)

	for _, a := range g.World.Animals {
		a.Update(deltaTime, hero)
		g.ScoreDelivered(a)
	}

	g.CollectNearbyAnimals()
	g.RemoveCompletedAnimals()

	full := g.IsGroupFull()
	g.World.Yard.SetHighlight(full, deltaTime)
	g.setGroupFull(full)
}

// updateTimer возвращает true, если в этом кадре игра закончилась.
func (g *Game) updateTimer(deltaTime float64) bool {
	g.state.TimeLeft -= deltaTime / config.FramesPerSecond
	if g.state.TimeLeft > 0 {
		return false
	}
	g.state.TimeLeft = 0
	g.endGame()
	return true
}

func (g *Game) endGame() {
	g.state.Phase = component.GameOver
	g.World.Hero.SetDirectionalInput(0, 0)
	g.Music.FadeToAfter(g.cfg.MusicFadedVolume, g.cfg.MusicFadeDelay)
	log.Printf("Game over, final score: %d", g.state.Score)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.state.Score})
}

// ScoreDelivered засчитывает животное, которое дошло за героем до загона.
// Повторный вызов для уже засчитанного животного ничего не делает.
func (g *Game) ScoreDelivered(a *entity.Animal) bool {
	if a.IsScored() || !a.IsInYard(g.World.Yard) {
		return false
	}
	if !a.MarkScored() {
		return false
	}
	g.state.Score++
	g.EventDispatcher.Dispatch(event.Event{Type: event.AnimalScored, Data: a.ID()})
	g.EventDispatcher.Dispatch(event.Event{Type: event.ScoreChanged, Data: g.state.Score})
	return true
}

// CollectNearbyAnimals присоединяет к группе патрулирующих животных в радиусе
// сбора, пока группа не заполнится. Возвращает число присоединённых.
func (g *Game) CollectNearbyAnimals() int {
	hero := g.World.Hero
	collected := 0
	for _, a := range g.World.Animals {
		if a.State() != component.Patrolling || hero.FollowerCount() >= g.cfg.MaxGroupSize {
			continue
		}
		if geom.Distance(hero.Position(), a.Position()) >= g.cfg.CollectionRadius {
			continue
		}
		if a.StartFollowing() {
			hero.AddFollower()
			collected++
			g.EventDispatcher.Dispatch(event.Event{Type: event.AnimalCollected, Data: a.ID()})
		}
	}
	return collected
}

// RemoveCompletedAnimals убирает засчитанных животных; каждое освобождает
// место в группе.
func (g *Game) RemoveCompletedAnimals() int {
	removed := g.World.RemoveAnimals((*entity.Animal).ShouldBeRemoved)
	for _, a := range removed {
		g.World.Hero.RemoveFollower()
		g.EventDispatcher.Dispatch(event.Event{Type: event.AnimalRemoved, Data: a.ID()})
	}
	return len(removed)
}

func (g *Game) setGroupFull(full bool) {
	if full == g.groupFull {
		return
	}
	g.groupFull = full
	g.EventDispatcher.Dispatch(event.Event{Type: event.GroupFullChanged, Data: full})
}

// --- Спавн ---

func (g *Game) spawnInitialAnimals() {
	count := utils.IntRange(g.rng, g.cfg.InitialAnimalsMin, g.cfg.InitialAnimalsMax)
	for i := 0; i < count; i++ {
		g.SpawnRandomAnimal()
	}
}

// SpawnRandomAnimal создаёт животное в случайной точке вне загона. При
// заданном MaxAnimals лишние запросы отбрасываются.
func (g *Game) SpawnRandomAnimal() {
	if g.cfg.MaxAnimals > 0 && len(g.World.Animals) >= g.cfg.MaxAnimals {
		return
	}
	g.SpawnAnimal(g.randomSpawnPoint())
}

// SpawnAnimal создаёт животное в pos.
func (g *Game) SpawnAnimal(pos geom.Vector) *entity.Animal {
	a := entity.NewAnimal(g.World.NewEntity(), pos, g.cfg, g.rng)
	g.World.AddAnimal(a)
	g.EventDispatcher.Dispatch(event.Event{Type: event.AnimalSpawned, Data: a.ID()})
	return a
}

func (g *Game) randomSpawnPoint() geom.Vector {
	area := g.cfg.SpawnArea()
	exclusion := g.cfg.YardExclusion()
	for i := 0; i < g.cfg.PlacementTries; i++ {
		p := geom.Vec(area.X+g.rng.Float64()*area.Width, area.Y+g.rng.Float64()*area.Height)
		if !exclusion.Contains(p) {
			return p
		}
	}
	log.Printf("No free spawn point after %d attempts, using %v", g.cfg.PlacementTries, g.cfg.SafeSpawn)
	return g.cfg.SafeSpawn
}

// --- Ввод ---

// SetHeroDirection передаёт направление с клавиатуры. Вне игры ввод
// сбрасывается.
func (g *Game) SetHeroDirection(xDir, yDir float64) {
	if g.state.Phase != component.Playing {
		g.World.Hero.SetDirectionalInput(0, 0)
		return
	}
	g.World.Hero.SetDirectionalInput(xDir, yDir)
}

// MoveHeroTo — клик или тап по полю.
func (g *Game) MoveHeroTo(target geom.Vector) {
	if g.state.Phase != component.Playing {
		return
	}
	g.World.Hero.MoveTo(target)
}

// TogglePause ставит игру на паузу или снимает с неё.
func (g *Game) TogglePause() {
	switch g.state.Phase {
	case component.Playing:
		g.state.Phase = component.Paused
	case component.Paused:
		g.state.Phase = component.Playing
	default:
		return
	}
	paused := g.state.Phase == component.Paused
	g.EventDispatcher.Dispatch(event.Event{Type: event.PauseToggled, Data: paused})
}

// ToggleMute включает или выключает музыку.
func (g *Game) ToggleMute() bool {
	return g.Music.ToggleMute()
}

// --- Public Accessors ---

func (g *Game) Config() *config.Config { return g.cfg }
func (g *Game) Phase() component.GamePhase { return g.state.Phase }
func (g *Game) Score() int { return g.state.Score }
func (g *Game) TimeLeft() float64 { return g.state.TimeLeft }
func (g *Game) IsPlaying() bool { return g.state.Phase == component.Playing }
func (g *Game) IsGameOver() bool { return g.state.Phase == component.GameOver }
func (g *Game) Hero() *entity.Hero { return g.World.Hero }
func (g *Game) Yard() *entity.Yard { return g.World.Yard }
func (g *Game) Animals() []*entity.Animal { return g.World.Animals }
func (g *Game) FollowerCount() int { return g.World.Hero.FollowerCount() }
func (g *Game) MaxGroupSize() int { return g.cfg.MaxGroupSize }
func (g *Game) MusicVolume() float64 { return g.Music.Volume() }

// IsGroupFull — группа героя достигла предела.
func (g *Game) IsGroupFull() bool {
	return g.World.Hero.FollowerCount() >= g.cfg.MaxGroupSize
}
