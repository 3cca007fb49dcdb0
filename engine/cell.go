package engine

import "fmt"

// Kind is what occupies a board cell.
type Kind int

const (
	Empty Kind = iota
	Border
	Snake
	Food
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Border:
		return "border"
	case Snake:
		return "snake"
	case Food:
		return "food"
	default:
		return "unknown"
	}
}

// Role is the part of the snake a Snake cell holds.
type Role int

const (
	Head Role = iota
	Body
	Tail
)

func (r Role) String() string {
	switch r {
	case Head:
		return "head"
	case Body:
		return "body"
	case Tail:
		return "tail"
	default:
		return "unknown"
	}
}

// Cell is the content of one board position. Role and Segment only carry
// meaning for Snake cells. Segment is the 1-based distance from the tail:
// the tail is 1 and the head equals the snake length.
type Cell struct {
	Kind    Kind
	Role    Role
	Segment int
}

func EmptyCell() Cell  { return Cell{Kind: Empty} }
func BorderCell() Cell { return Cell{Kind: Border} }
func FoodCell() Cell   { return Cell{Kind: Food} }

func SnakeCell(role Role, segment int) Cell {
	return Cell{Kind: Snake, Role: role, Segment: segment}
}

// Equal compares kinds only: any two snake cells are equal regardless of
// role and segment. Compare with == when the payload matters.
func (c Cell) Equal(o Cell) bool {
	return c.Kind == o.Kind
}

func (c Cell) IsHead() bool {
	return c.Kind == Snake && c.Role == Head
}

// Rune is the text glyph for the cell.
func (c Cell) Rune() rune {
	switch c.Kind {
	case Border:
		return '#'
	case Food:
		return 'Q'
	case Snake:
		switch c.Role {
		case Head:
			return '@'
		case Tail:
			return '.'
		default:
			return '*'
		}
	default:
		return ' '
	}
}

func (c Cell) String() string {
	if c.Kind == Snake {
		return fmt.Sprintf("snake(%v, %d)", c.Role, c.Segment)
	}
	return c.Kind.String()
}
