// internal/component/movement.go
package component

// MovementMode — режим движения героя
type MovementMode int

const (
	Idle        MovementMode = iota
	Seeking                  // идёт к точке клика
	Directional              // управляется клавишами
)

func (m MovementMode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case Seeking:
		return "Seeking"
	case Directional:
		return "Directional"
	}
	return "Unknown"
}
