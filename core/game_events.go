package core

import "github.com/google/uuid"

// GameOverReason tells why a game stopped.
type GameOverReason int

const (
	NotOver GameOverReason = iota
	PlaygroundFilled
	BorderHit
	SelfBite
)

func (r GameOverReason) String() string {
	switch r {
	case NotOver:
		return "not over"
	case PlaygroundFilled:
		return "playground filled"
	case BorderHit:
		return "border hit"
	case SelfBite:
		return "self bite"
	default:
		return "unknown"
	}
}

// Events below are handed to a game observer in the order they happen
// within a tick.

type Tick struct {
	GameID uuid.UUID
	Step   int
	Head   Coord
	Length int
}

type NewFood struct {
	GameID uuid.UUID
	Pos    Coord
}

type FoodEaten struct {
	GameID uuid.UUID
	Pos    Coord
	Length int // length after growing
}

type GameOver struct {
	GameID uuid.UUID
	Reason GameOverReason
	Step   int
	Length int
}
