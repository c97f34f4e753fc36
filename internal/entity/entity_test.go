package entity

import (
	"math"
	"testing"

	"go-sheep-picker/internal/component"
	"go-sheep-picker/internal/config"
	"go-sheep-picker/pkg/geom"
)

// constRand всегда возвращает одно и то же число.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

func near(a, b geom.Vector) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func testConfig() *config.Config {
	cfg := config.Default()
	return &cfg
}

func TestClampToField(t *testing.T) {
	b := NewBounds(testConfig())
	got := b.Clamp(geom.Vec(-100, 5000), 25)
	if got != geom.Vec(32, 768) {
		t.Fatalf("Clamp = %v, want (32,768)", got)
	}
}

func TestHeroRemoveFollowerFloorsAtZero(t *testing.T) {
	h := NewHero(testConfig())
	h.RemoveFollower()
	if h.FollowerCount() != 0 {
		t.Fatalf("FollowerCount = %d, want 0", h.FollowerCount())
	}
	h.AddFollower()
	h.AddFollower()
	h.RemoveFollower()
	if h.FollowerCount() != 1 {
		t.Fatalf("FollowerCount = %d, want 1", h.FollowerCount())
	}
}

func TestHeroDirectionalMovementIsNormalized(t *testing.T) {
	h := NewHero(testConfig())
	h.SetDirectionalInput(1, 1)
	h.Update(1)

	step := 3 / math.Sqrt2
	want := geom.Vec(150+step, 150+step)
	if !near(h.Position(), want) {
		t.Fatalf("Position = %v, want %v", h.Position(), want)
	}
	if h.Mode() != component.Directional {
		t.Errorf("Mode = %v, want Directional", h.Mode())
	}
}

func TestHeroDirectionalInputCancelsSeek(t *testing.T) {
	h := NewHero(testConfig())
	h.MoveTo(geom.Vec(400, 400))
	if h.Mode() != component.Seeking {
		t.Fatalf("Mode = %v, want Seeking", h.Mode())
	}
	h.SetDirectionalInput(0, -1)
	if _, ok := h.Target(); ok {
		t.Fatal("seek target survived directional input")
	}
	h.MoveTo(geom.Vec(600, 600))
	if _, ok := h.Target(); ok {
		t.Fatal("MoveTo took effect while directional input was held")
	}

	h.SetDirectionalInput(0, 0)
	h.Update(1)
	if h.Position() != geom.Vec(150, 150) {
		t.Fatalf("idle hero moved to %v", h.Position())
	}
	if h.Mode() != component.Idle {
		t.Errorf("Mode = %v, want Idle", h.Mode())
	}
}

func TestHeroSeekArrives(t *testing.T) {
	h := NewHero(testConfig())
	h.MoveTo(geom.Vec(160, 150))
	for i := 0; i < 3; i++ {
		h.Update(1)
	}
	if !near(h.Position(), geom.Vec(159, 150)) {
		t.Fatalf("Position after 3 frames = %v, want (159,150)", h.Position())
	}
	h.Update(1)
	if _, ok := h.Target(); ok {
		t.Fatal("target not cleared on arrival")
	}
	if !near(h.Position(), geom.Vec(159, 150)) {
		t.Fatalf("hero moved on the arrival frame: %v", h.Position())
	}
}

func TestHeroClampedToField(t *testing.T) {
	h := NewHero(testConfig())
	h.SetDirectionalInput(-1, 0)
	for i := 0; i < 200; i++ {
		h.Update(1)
	}
	if h.Position().X != 32 {
		t.Fatalf("X = %v, want 32", h.Position().X)
	}
}

func TestHeroMoveToOutsideFieldIsReachable(t *testing.T) {
	h := NewHero(testConfig())
	h.MoveTo(geom.Vec(-500, 150))
	target, _ := h.Target()
	if target.X != 32 {
		t.Fatalf("target X = %v, want clamped 32", target.X)
	}
}

func newPatrollingAnimal(pos, target geom.Vector) *Animal {
	a := NewAnimal(1, pos, testConfig(), constRand(0.1))
	a.patrolTarget = target
	a.patrolWait = 0
	return a
}

func TestAnimalWaitsBeforePatrolling(t *testing.T) {
	a := newPatrollingAnimal(geom.Vec(200, 200), geom.Vec(300, 200))
	a.patrolWait = 10
	a.Update(4, nil)
	if a.Position() != geom.Vec(200, 200) {
		t.Fatalf("animal moved while waiting: %v", a.Position())
	}
	if a.PatrolWait() != 6 {
		t.Fatalf("PatrolWait = %v, want 6", a.PatrolWait())
	}
}

func TestAnimalPatrolsAtHalfSpeed(t *testing.T) {
	a := newPatrollingAnimal(geom.Vec(200, 200), geom.Vec(300, 200))
	a.Update(1, nil)
	if !near(a.Position(), geom.Vec(201, 200)) {
		t.Fatalf("Position = %v, want (201,200)", a.Position())
	}
}

func TestAnimalPatrolAvoidsYard(t *testing.T) {
	a := newPatrollingAnimal(geom.Vec(479.5, 400), geom.Vec(700, 400))
	a.Update(1, nil)
	if a.Position() != geom.Vec(479.5, 400) {
		t.Fatalf("animal entered the yard margin: %v", a.Position())
	}
	if a.PatrolTarget() == geom.Vec(700, 400) {
		t.Fatal("patrol target was not replaced")
	}
	if a.PatrolWait() != 0 {
		t.Errorf("corrective reselection set a wait of %v", a.PatrolWait())
	}
	if a.cfg.YardExclusion().Contains(a.PatrolTarget()) {
		t.Errorf("new target %v is inside the yard margin", a.PatrolTarget())
	}
}

func TestAnimalArrivalPicksTargetAndWait(t *testing.T) {
	a := newPatrollingAnimal(geom.Vec(200, 200), geom.Vec(201, 200))
	a.Update(1, nil)
	if a.Position() != geom.Vec(200, 200) {
		t.Fatalf("animal moved on arrival: %v", a.Position())
	}
	// constRand(0.1): цель (160,120), ожидание 30 + 0.1*60
	if !near(a.PatrolTarget(), geom.Vec(160, 120)) {
		t.Errorf("PatrolTarget = %v, want (160,120)", a.PatrolTarget())
	}
	if math.Abs(a.PatrolWait()-36) > 1e-9 {
		t.Errorf("PatrolWait = %v, want 36", a.PatrolWait())
	}
}

func TestAnimalPatrolTargetFallback(t *testing.T) {
	// 0.5 всегда попадает в загон: (600, 400)
	a := NewAnimal(1, geom.Vec(1140, 60), testConfig(), constRand(0.5))
	if a.PatrolTarget() != geom.Vec(1140, 60) {
		t.Fatalf("fallback target = %v, want current position (1140,60)", a.PatrolTarget())
	}
}

func TestAnimalFollowsHeroWithSlack(t *testing.T) {
	a := newPatrollingAnimal(geom.Vec(300, 300), geom.Vec(300, 300))
	if !a.StartFollowing() {
		t.Fatal("StartFollowing from Patrolling = false")
	}
	hero := NewHero(testConfig())
	hero.Reset(geom.Vec(400, 300))

	a.Update(1, hero)
	if !near(a.Position(), geom.Vec(302, 300)) {
		t.Fatalf("Position = %v, want (302,300)", a.Position())
	}

	hero.Reset(geom.Vec(330, 300))
	a.Update(1, hero)
	if !near(a.Position(), geom.Vec(302, 300)) {
		t.Fatalf("animal moved inside follow slack: %v", a.Position())
	}
}

func TestAnimalTransitions(t *testing.T) {
	a := newPatrollingAnimal(geom.Vec(600, 400), geom.Vec(600, 400))
	yard := NewYard(testConfig())

	if a.MarkScored() {
		t.Fatal("MarkScored from Patrolling = true")
	}
	if a.IsInYard(yard) {
		t.Fatal("patrolling animal reported in yard")
	}
	a.StartFollowing()
	if a.StartFollowing() {
		t.Fatal("second StartFollowing = true")
	}
	if !a.IsInYard(yard) {
		t.Fatal("following animal at (600,400) not in yard")
	}
	if !a.MarkScored() {
		t.Fatal("MarkScored from Following = false")
	}
	if a.MarkScored() {
		t.Fatal("second MarkScored = true")
	}
	if a.IsInYard(yard) || !a.ShouldBeRemoved() {
		t.Fatalf("scored animal: inYard=%v remove=%v", a.IsInYard(yard), a.ShouldBeRemoved())
	}
	if a.StartFollowing() {
		t.Fatal("scored animal went back to following")
	}

	hero := NewHero(testConfig())
	a.Update(10, hero)
	if a.Position() != geom.Vec(600, 400) {
		t.Fatalf("scored animal moved to %v", a.Position())
	}
}

func TestYardHighlightOscillates(t *testing.T) {
	y := NewYard(testConfig())
	y.SetHighlight(true, 1)
	if y.Glow() != 0.3 {
		t.Fatalf("first full frame glow = %v, want floor 0.3", y.Glow())
	}
	maxSeen, minSeen := 0.0, 1.0
	for i := 0; i < 200; i++ {
		y.SetHighlight(true, 1)
		g := y.Glow()
		if g < 0.3 || g > 1 {
			t.Fatalf("glow %v out of [0.3,1]", g)
		}
		maxSeen = math.Max(maxSeen, g)
		minSeen = math.Min(minSeen, g)
	}
	if maxSeen != 1 || minSeen != 0.3 {
		t.Fatalf("glow range [%v,%v], want [0.3,1]", minSeen, maxSeen)
	}
}

func TestYardHighlightDecaysToZero(t *testing.T) {
	y := NewYard(testConfig())
	for i := 0; i < 30; i++ {
		y.SetHighlight(true, 1)
	}
	for i := 0; i < 30; i++ {
		y.SetHighlight(false, 1)
	}
	if y.Glow() != 0 {
		t.Fatalf("glow = %v, want 0", y.Glow())
	}
	y.SetHighlight(false, 1)
	if y.Glow() != 0 {
		t.Fatalf("glow went below zero: %v", y.Glow())
	}
}

func TestWorldRemoveAnimalsKeepsOrder(t *testing.T) {
	cfg := testConfig()
	w := NewWorld(cfg)
	for i := 0; i < 4; i++ {
		w.AddAnimal(NewAnimal(w.NewEntity(), geom.Vec(100, 100), cfg, constRand(0.1)))
	}
	removed := w.RemoveAnimals(func(a *Animal) bool { return a.ID()%2 == 0 })
	if len(removed) != 2 || len(w.Animals) != 2 {
		t.Fatalf("removed %d, kept %d", len(removed), len(w.Animals))
	}
	if w.Animals[0].ID() != 1 || w.Animals[1].ID() != 3 {
		t.Fatalf("kept IDs %d,%d want 1,3", w.Animals[0].ID(), w.Animals[1].ID())
	}
	if _, ok := w.Animal(2); ok {
		t.Fatal("removed animal still found")
	}
}
