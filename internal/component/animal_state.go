// internal/component/animal_state.go
package component

// AnimalState — состояние животного
type AnimalState int

const (
	Patrolling AnimalState = iota // бродит по полю
	Following                     // идёт за героем
	Scored                        // доставлено в загон, ждёт удаления
)

func (s AnimalState) String() string {
	switch s {
	case Patrolling:
		return "Patrolling"
	case Following:
		return "Following"
	case Scored:
		return "Scored"
	}
	return "Unknown"
}
