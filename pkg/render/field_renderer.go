// pkg/render/field_renderer.go
package render

import (
	"image/color"

	"go-sheep-picker/internal/app"
	"go-sheep-picker/internal/entity"
	"go-sheep-picker/internal/event"
	"go-sheep-picker/internal/types"
	"go-sheep-picker/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	spawnPopFrames = 12.0 // длительность появления нового животного
	glowBaseWidth  = 3.0
	glowExtraWidth = 2.0
)

// FieldRenderer рисует поле, загон и сущности. Статичный фон
// предрендерится один раз.
type FieldRenderer struct {
	colors     *FieldColors
	fieldImage *ebiten.Image
	pops       map[types.EntityID]float64 // id -> прогресс появления в кадрах
}

// NewFieldRenderer создаёт рендерер и подписывает его на события спавна.
func NewFieldRenderer(g *app.Game, colors *FieldColors, screenWidth, screenHeight int) *FieldRenderer {
	r := &FieldRenderer{
		colors:     colors,
		fieldImage: ebiten.NewImage(screenWidth, screenHeight),
		pops:       make(map[types.EntityID]float64),
	}
	r.RenderFieldImage(g)
	g.EventDispatcher.Subscribe(event.AnimalSpawned, r)
	g.EventDispatcher.Subscribe(event.AnimalRemoved, r)
	return r
}

// OnEvent отслеживает появление и удаление животных.
func (r *FieldRenderer) OnEvent(e event.Event) {
	id, ok := e.Data.(types.EntityID)
	if !ok {
		return
	}
	switch e.Type {
	case event.AnimalSpawned:
		r.pops[id] = 0
	case event.AnimalRemoved:
		delete(r.pops, id)
	}
}

// Update продвигает анимации появления.
func (r *FieldRenderer) Update(deltaTime float64) {
	for id, progress := range r.pops {
		progress += deltaTime
		if progress >= spawnPopFrames {
			delete(r.pops, id)
			continue
		}
		r.pops[id] = progress
	}
}

// RenderFieldImage рисует фон поля и рамку.
func (r *FieldRenderer) RenderFieldImage(g *app.Game) {
	cfg := g.Config()
	f := cfg.Field
	r.fieldImage.Clear()
	r.fieldImage.Fill(r.colors.Background)
	vector.StrokeRect(r.fieldImage, float32(f.X), float32(f.Y), float32(f.Width), float32(f.Height),
		float32(cfg.FieldBorder)*2, r.colors.Border, false)
}

// Draw выводит кадр поверх предрендеренного фона.
func (r *FieldRenderer) Draw(screen *ebiten.Image, g *app.Game) {
	screen.DrawImage(r.fieldImage, nil)
	r.drawYard(screen, g.Yard())
	for _, a := range g.Animals() {
		r.drawAnimal(screen, a)
	}
	r.drawHero(screen, g.Hero())
}

func (r *FieldRenderer) drawYard(screen *ebiten.Image, yard *entity.Yard) {
	rect := yard.Rect()
	x, y := float32(rect.X), float32(rect.Y)
	w, h := float32(rect.Width), float32(rect.Height)

	glow := yard.Glow()
	fillAlpha := float64(utils.Lerp(0.3, 0.6, float32(glow)))
	vector.DrawFilledRect(screen, x, y, w, h, WithAlpha(r.colors.Yard, fillAlpha), false)

	if glow > 0 {
		size := float32(glowBaseWidth + glow*glowExtraWidth)
		vector.StrokeRect(screen, x-size, y-size, w+size*2, h+size*2, size, WithAlpha(r.colors.YardGlow, glow*0.8), false)
		vector.StrokeRect(screen, x, y, w, h, r.colors.StrokeWidth, WithAlpha(r.colors.YardBorder, glow), false)
		return
	}
	vector.StrokeRect(screen, x, y, w, h, r.colors.StrokeWidth, r.colors.YardBorder, false)
}

func (r *FieldRenderer) drawAnimal(screen *ebiten.Image, a *entity.Animal) {
	pos := a.Position()
	radius := float32(a.Radius())
	if progress, ok := r.pops[a.ID()]; ok {
		radius *= utils.Lerp(0.2, 1, float32(progress/spawnPopFrames))
	}

	var fill color.Color = r.colors.Animal
	if a.PatrolWait() > 0 && !a.IsFollowing() {
		// стоящее на месте животное чуть темнее
		fill = DarkenColor(r.colors.Animal)
	}
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, fill, true)
	if a.IsFollowing() {
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), radius+2, r.colors.StrokeWidth, r.colors.FollowerRing, true)
	}
}

func (r *FieldRenderer) drawHero(screen *ebiten.Image, h *entity.Hero) {
	pos := h.Position()
	radius := float32(h.Radius())
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, r.colors.Hero, true)
	vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), radius, r.colors.StrokeWidth, DarkenColor(r.colors.Hero), true)

	if target, ok := h.Target(); ok {
		vector.StrokeCircle(screen, float32(target.X), float32(target.Y), 6, 1, WithAlpha(r.colors.Hero, 0.6), true)
	}
}
