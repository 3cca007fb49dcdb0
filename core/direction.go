package core

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in clockwise order starting from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

var unitVectors = map[Direction]Coord{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

// Unit returns the one-cell offset for d. Y grows downward, so Up is (0, -1).
func (d Direction) Unit() Coord {
	return unitVectors[d]
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		panic("the value of direction is unknown")
	}
}

func (d Direction) Valid() bool {
	_, ok := unitVectors[d]
	return ok
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
