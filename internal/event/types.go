// internal/event/types.go
package event

const (
	GameStarted      EventType = "GameStarted"
	AnimalSpawned    EventType = "AnimalSpawned"    // Data: types.EntityID
	AnimalCollected  EventType = "AnimalCollected"  // Data: types.EntityID
	AnimalScored     EventType = "AnimalScored"     // Data: types.EntityID
	AnimalRemoved    EventType = "AnimalRemoved"    // Data: types.EntityID
	ScoreChanged     EventType = "ScoreChanged"     // Data: int, новый счёт
	GroupFullChanged EventType = "GroupFullChanged" // Data: bool
	PauseToggled     EventType = "PauseToggled"     // Data: bool, на паузе ли
	GameOver         EventType = "GameOver"         // Data: int, итоговый счёт
)
