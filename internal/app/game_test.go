package app

import (
	"testing"

	"go-sheep-picker/internal/component"
	"go-sheep-picker/internal/config"
	"go-sheep-picker/internal/event"
	"go-sheep-picker/pkg/geom"
)

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

// newTestGame — игра без начальных животных. constRand(0.9) ставит новых
// животных в (1040,680), далеко от героя и загона.
func newTestGame(t *testing.T, mutate func(*config.Config)) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.InitialAnimalsMin = 0
	cfg.InitialAnimalsMax = 0
	if mutate != nil {
		mutate(&cfg)
	}
	return NewGame(cfg, constRand(0.9))
}

func countEvents(g *Game, typ event.EventType) *int {
	n := new(int)
	g.EventDispatcher.Subscribe(typ, event.ListenerFunc(func(event.Event) { *n++ }))
	return n
}

func TestNewGameSpawnsInitialPopulation(t *testing.T) {
	g := NewGame(config.Default(), constRand(0.9))
	// IntRange(5, 10) при 0.9 даёт 10
	if len(g.Animals()) != 10 {
		t.Fatalf("initial animals = %d, want 10", len(g.Animals()))
	}
	for _, a := range g.Animals() {
		if g.Config().YardExclusion().Contains(a.Position()) {
			t.Errorf("animal %d spawned inside yard margin at %v", a.ID(), a.Position())
		}
	}
	if g.Phase() != component.NotStarted || g.TimeLeft() != 60 {
		t.Errorf("phase=%v time=%v", g.Phase(), g.TimeLeft())
	}
}

func TestScenarioCollectionSweep(t *testing.T) {
	g := newTestGame(t, nil)
	g.Hero().Reset(geom.Vec(0, 0))
	a := g.SpawnAnimal(geom.Vec(10, 0))

	if n := g.CollectNearbyAnimals(); n != 1 {
		t.Fatalf("collected %d, want 1", n)
	}
	if a.State() != component.Following {
		t.Errorf("state = %v, want Following", a.State())
	}
	if g.FollowerCount() != 1 {
		t.Errorf("FollowerCount = %d, want 1", g.FollowerCount())
	}
}

func TestCollectionRespectsRadiusAndCap(t *testing.T) {
	g := newTestGame(t, nil)
	g.Hero().Reset(geom.Vec(300, 300))
	outside := g.SpawnAnimal(geom.Vec(350, 300)) // ровно на радиусе
	for i := 0; i < 7; i++ {
		g.SpawnAnimal(geom.Vec(300+float64(i), 310))
	}

	if n := g.CollectNearbyAnimals(); n != 5 {
		t.Fatalf("collected %d, want cap 5", n)
	}
	if outside.IsFollowing() {
		t.Error("animal at distance == radius was collected")
	}
	if !g.IsGroupFull() {
		t.Error("IsGroupFull = false with 5 followers")
	}
	if g.CollectNearbyAnimals() != 0 || g.FollowerCount() != 5 {
		t.Fatalf("second sweep changed count to %d", g.FollowerCount())
	}
	if h := g.HUD(); h.Message != GroupFullMessage || h.Collected != "Animals: 5/5" {
		t.Errorf("HUD = %+v", h)
	}
}

func TestScenarioYardDeliveryScoresOnce(t *testing.T) {
	g := newTestGame(t, nil)
	scored := countEvents(g, event.AnimalScored)
	removed := countEvents(g, event.AnimalRemoved)

	g.Hero().Reset(geom.Vec(600, 400))
	a := g.SpawnAnimal(geom.Vec(600, 400))
	g.CollectNearbyAnimals()
	if !g.Yard().Contains(a.Position()) {
		t.Fatal("yard does not contain (600,400)")
	}

	if !g.ScoreDelivered(a) {
		t.Fatal("ScoreDelivered = false for following animal in yard")
	}
	if a.State() != component.Scored || g.Score() != 1 {
		t.Fatalf("state=%v score=%d, want Scored and 1", a.State(), g.Score())
	}
	for i := 0; i < 3; i++ {
		if g.ScoreDelivered(a) {
			t.Fatal("animal scored twice")
		}
	}
	if g.Score() != 1 || *scored != 1 {
		t.Fatalf("score=%d events=%d, want 1 and 1", g.Score(), *scored)
	}

	if n := g.RemoveCompletedAnimals(); n != 1 {
		t.Fatalf("removed %d, want 1", n)
	}
	if len(g.Animals()) != 0 || g.FollowerCount() != 0 || *removed != 1 {
		t.Fatalf("animals=%d followers=%d removedEvents=%d", len(g.Animals()), g.FollowerCount(), *removed)
	}
	if g.RemoveCompletedAnimals() != 0 {
		t.Fatal("animal pruned twice")
	}
}

func TestPruneDecrementsFollowersByOneEach(t *testing.T) {
	g := newTestGame(t, nil)
	g.Hero().Reset(geom.Vec(600, 400))
	for i := 0; i < 3; i++ {
		g.SpawnAnimal(geom.Vec(600+float64(i), 400))
	}
	g.CollectNearbyAnimals()
	g.ScoreDelivered(g.Animals()[0])
	g.ScoreDelivered(g.Animals()[2])

	g.RemoveCompletedAnimals()
	if g.FollowerCount() != 1 || len(g.Animals()) != 1 {
		t.Fatalf("followers=%d animals=%d, want 1 and 1", g.FollowerCount(), len(g.Animals()))
	}
}

func TestPatrollingAnimalInYardIsNotScored(t *testing.T) {
	g := newTestGame(t, nil)
	a := g.SpawnAnimal(geom.Vec(600, 400))
	if g.ScoreDelivered(a) || g.Score() != 0 {
		t.Fatal("patrolling animal scored")
	}
}

func TestScenarioClockEndsGameOnce(t *testing.T) {
	g := newTestGame(t, nil)
	overs := countEvents(g, event.GameOver)
	g.Start()

	for i := 0; i < 60; i++ {
		g.Update(60)
	}
	if g.TimeLeft() != 0 {
		t.Fatalf("TimeLeft = %v, want 0", g.TimeLeft())
	}
	if !g.IsGameOver() || *overs != 1 {
		t.Fatalf("gameOver=%v events=%d", g.IsGameOver(), *overs)
	}
	for i := 0; i < 10; i++ {
		g.Update(60)
	}
	if *overs != 1 || g.TimeLeft() != 0 {
		t.Fatalf("game over retriggered: events=%d time=%v", *overs, g.TimeLeft())
	}
}

func TestScenarioSpawnerThroughGame(t *testing.T) {
	g := newTestGame(t, nil)
	var spawnFrames []int
	frame := 0
	g.EventDispatcher.Subscribe(event.AnimalSpawned, event.ListenerFunc(func(event.Event) {
		spawnFrames = append(spawnFrames, frame)
	}))
	g.Start()
	for frame = 1; frame <= 200; frame++ {
		g.Update(1)
	}
	if len(spawnFrames) != 2 || spawnFrames[0] != 90 || spawnFrames[1] != 180 {
		t.Fatalf("spawn frames = %v, want [90 180]", spawnFrames)
	}
}

func TestPopulationCap(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) { c.MaxAnimals = 3 })
	for i := 0; i < 5; i++ {
		g.SpawnRandomAnimal()
	}
	if len(g.Animals()) != 3 {
		t.Fatalf("animals = %d, want cap 3", len(g.Animals()))
	}
}

func TestSpawnFallsBackToSafePoint(t *testing.T) {
	cfg := config.Default()
	cfg.InitialAnimalsMin, cfg.InitialAnimalsMax = 0, 0
	// 0.5 всегда даёт (600,400) — внутри загона
	g := NewGame(cfg, constRand(0.5))
	g.SpawnRandomAnimal()
	if got := g.Animals()[0].Position(); got != cfg.SafeSpawn {
		t.Fatalf("spawn = %v, want safe point %v", got, cfg.SafeSpawn)
	}
}

func TestInputIgnoredOutsidePlay(t *testing.T) {
	g := newTestGame(t, nil)
	g.MoveHeroTo(geom.Vec(400, 400))
	if _, ok := g.Hero().Target(); ok {
		t.Fatal("MoveHeroTo accepted before start")
	}

	g.Start()
	g.SetHeroDirection(1, 0)
	g.Update(1)
	if g.Hero().Position().X != 153 {
		t.Fatalf("hero X = %v, want 153", g.Hero().Position().X)
	}

	g.Update(60 * 60)
	if !g.IsGameOver() {
		t.Fatal("game not over")
	}
	if g.Hero().Mode() != component.Idle {
		t.Fatalf("hero mode after game over = %v, want Idle", g.Hero().Mode())
	}
	pos := g.Hero().Position()
	g.SetHeroDirection(1, 0)
	g.MoveHeroTo(geom.Vec(900, 700))
	animals := len(g.Animals())
	for i := 0; i < 200; i++ {
		g.Update(1)
	}
	if g.Hero().Position() != pos || len(g.Animals()) != animals {
		t.Fatal("world changed after game over")
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start()
	g.TogglePause()
	g.Update(60)
	if g.TimeLeft() != 60 || g.Phase() != component.Paused {
		t.Fatalf("paused: time=%v phase=%v", g.TimeLeft(), g.Phase())
	}
	g.TogglePause()
	g.Update(60)
	if g.TimeLeft() != 59 {
		t.Fatalf("TimeLeft = %v, want 59", g.TimeLeft())
	}
}

func TestRestartResetsSession(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) {
		c.InitialAnimalsMin, c.InitialAnimalsMax = 2, 2
	})
	g.Hero().Reset(geom.Vec(600, 400))
	g.SpawnAnimal(geom.Vec(600, 400))
	g.Start()
	// первый кадр — сбор, второй — доставка
	g.Update(1)
	g.Update(1)
	if g.Score() != 1 {
		t.Fatalf("score = %d, want 1", g.Score())
	}
	g.Update(60 * 60)

	g.Restart()
	if g.Score() != 0 || g.FollowerCount() != 0 || g.TimeLeft() != 60 {
		t.Fatalf("after restart score=%d followers=%d time=%v", g.Score(), g.FollowerCount(), g.TimeLeft())
	}
	if !g.IsPlaying() || len(g.Animals()) != 2 {
		t.Fatalf("playing=%v animals=%d", g.IsPlaying(), len(g.Animals()))
	}
	if g.Hero().Position() != g.Config().HeroStart {
		t.Fatalf("hero at %v", g.Hero().Position())
	}
}

func TestHerdingIntoYard(t *testing.T) {
	g := newTestGame(t, nil)
	g.Hero().Reset(geom.Vec(300, 420))
	g.SpawnAnimal(geom.Vec(300, 420))
	fullChanges := countEvents(g, event.GroupFullChanged)
	g.Start()

	g.Update(1)
	if g.FollowerCount() != 1 {
		t.Fatalf("FollowerCount = %d, want 1", g.FollowerCount())
	}
	g.MoveHeroTo(geom.Vec(650, 420))
	for i := 0; i < 300; i++ {
		g.Update(1)
	}
	if g.Score() != 1 {
		t.Fatalf("Score = %d, want 1", g.Score())
	}
	if g.FollowerCount() != 0 {
		t.Fatalf("FollowerCount = %d, want 0 after delivery", g.FollowerCount())
	}
	if *fullChanges != 0 {
		t.Fatalf("group never filled but got %d GroupFullChanged events", *fullChanges)
	}
}

func TestYardGlowsWhileGroupFull(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) { c.MaxGroupSize = 1 })
	g.Hero().Reset(geom.Vec(300, 200))
	g.SpawnAnimal(geom.Vec(300, 200))
	g.Start()
	g.Update(1)
	if !g.IsGroupFull() || g.Yard().Glow() < 0.3 {
		t.Fatalf("full=%v glow=%v", g.IsGroupFull(), g.Yard().Glow())
	}
}

func TestMusicFadesAroundSession(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start()
	if g.MusicVolume() != 0.05 {
		t.Fatalf("start volume = %v, want 0.05", g.MusicVolume())
	}
	g.Update(60)
	if g.MusicVolume() <= 0.05 {
		t.Fatalf("volume did not rise: %v", g.MusicVolume())
	}
}
