package arena

// Direction is one of the four cardinal headings.
// X grows east, Z grows south.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Vector returns the unit movement vector for the heading.
func (d Direction) Vector() (dx, dz int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Left returns the heading after a counter-clockwise quarter turn.
func (d Direction) Left() Direction {
	switch d {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default:
		return North
	}
}

// Right returns the heading after a clockwise quarter turn.
// Left and Right cycles are inverses of each other.
func (d Direction) Right() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}
