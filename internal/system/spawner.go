// internal/system/spawner.go
package system

import (
	"go-sheep-picker/internal/utils"
)

// SpawnContext — то, что спавнеру нужно от игры. Где и можно ли создавать
// животное, решает игра.
type SpawnContext interface {
	SpawnRandomAnimal()
}

// AnimalSpawner раз в случайный интервал из [min, max] кадров просит игру
// создать новое животное.
type AnimalSpawner struct {
	game          SpawnContext
	rng           utils.Rand
	minInterval   float64
	maxInterval   float64
	timer         float64
	nextSpawnTime float64
}

func NewAnimalSpawner(game SpawnContext, rng utils.Rand, minInterval, maxInterval float64) *AnimalSpawner {
	s := &AnimalSpawner{
		game:        game,
		rng:         rng,
		minInterval: minInterval,
		maxInterval: maxInterval,
	}
	s.Reset()
	return s
}

func (s *AnimalSpawner) Update(deltaTime float64) {
	s.timer += deltaTime
	if s.timer >= s.nextSpawnTime {
		s.game.SpawnRandomAnimal()
		s.timer = 0
		s.nextSpawnTime = s.randomInterval()
	}
}

// Reset обнуляет таймер и выбирает новый интервал.
func (s *AnimalSpawner) Reset() {
	s.timer = 0
	s.nextSpawnTime = s.randomInterval()
}

// NextSpawnTime — порог текущего интервала в кадрах.
func (s *AnimalSpawner) NextSpawnTime() float64 {
	return s.nextSpawnTime
}

func (s *AnimalSpawner) randomInterval() float64 {
	return utils.Range(s.rng, s.minInterval, s.maxInterval)
}
