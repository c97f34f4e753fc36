package component

// GamePhase — фаза игровой сессии
type GamePhase int

const (
	NotStarted GamePhase = iota
	Playing
	Paused
	GameOver
)

// GameState — счёт и таймер текущей сессии
type GameState struct {
	Phase    GamePhase
	Score    int
	TimeLeft float64 // секунды
}
