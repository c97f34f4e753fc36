// internal/app/hud.go
package app

import (
	"fmt"
	"math"
)

// Urgency — насколько мало осталось времени.
type Urgency int

const (
	UrgencyNormal Urgency = iota
	UrgencyWarning
	UrgencyCritical
)

const (
	warningSeconds  = 30
	criticalSeconds = 10

	GroupFullMessage = "Guide them to the YARD!"
)

// HUD — готовые к выводу строки и флаги интерфейса на текущий кадр.
type HUD struct {
	Score     string
	Collected string
	Message   string
	Clock     string
	Urgency   Urgency
	GroupFull bool
}

// HUD собирает состояние интерфейса.
func (g *Game) HUD() HUD {
	full := g.IsGroupFull()
	h := HUD{
		Score:     fmt.Sprintf("Score: %d", g.Score()),
		Collected: fmt.Sprintf("Animals: %d/%d", g.FollowerCount(), g.MaxGroupSize()),
		Clock:     FormatClock(g.TimeLeft()),
		Urgency:   ClockUrgency(g.TimeLeft()),
		GroupFull: full,
	}
	if full {
		h.Message = GroupFullMessage
	}
	return h
}

// FormatClock форматирует секунды как M:SS, отбрасывая дробную часть.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := int(math.Floor(seconds / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// ClockUrgency — уровень тревоги для цвета таймера.
func ClockUrgency(seconds float64) Urgency {
	switch {
	case seconds <= criticalSeconds:
		return UrgencyCritical
	case seconds <= warningSeconds:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}
