// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// Rand — источник случайных чисел для игровой логики. Сущности получают его
// извне, чтобы тесты могли подставить предсказуемую последовательность.
type Rand interface {
	Float64() float64
}

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает число в [min, max). При min == max всегда min.
func Range(r Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// IntRange возвращает целое в [min, max] включительно.
func IntRange(r Rand, min, max int) int {
	if max <= min {
		return min
	}
	n := min + int(r.Float64()*float64(max-min+1))
	if n > max {
		n = max
	}
	return n
}
