// internal/entity/world.go
package entity

import (
	"go-sheep-picker/internal/config"
	"go-sheep-picker/internal/types"
)

// World владеет всеми сущностями сессии: одним героем, одним загоном и
// списком животных в порядке появления.
type World struct {
	NextID  types.EntityID
	Hero    *Hero
	Yard    *Yard
	Animals []*Animal
}

func NewWorld(cfg *config.Config) *World {
	return &World{
		NextID: 1,
		Hero:   NewHero(cfg),
		Yard:   NewYard(cfg),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddAnimal добавляет животное в конец списка.
func (w *World) AddAnimal(a *Animal) {
	w.Animals = append(w.Animals, a)
}

// Animal ищет животное по идентификатору.
func (w *World) Animal(id types.EntityID) (*Animal, bool) {
	for _, a := range w.Animals {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}

// RemoveAnimals удаляет животных, для которых drop вернул true, сохраняя
// порядок остальных. Возвращает удалённых.
func (w *World) RemoveAnimals(drop func(*Animal) bool) []*Animal {
	var removed []*Animal
	kept := w.Animals[:0]
	for _, a := range w.Animals {
		if drop(a) {
			removed = append(removed, a)
			continue
		}
		kept = append(kept, a)
	}
	for i := len(kept); i < len(w.Animals); i++ {
		w.Animals[i] = nil
	}
	w.Animals = kept
	return removed
}

// ClearAnimals удаляет всех животных.
func (w *World) ClearAnimals() []*Animal {
	removed := w.Animals
	w.Animals = nil
	return removed
}
