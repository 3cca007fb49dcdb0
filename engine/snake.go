package engine

import "github.com/kuredoro/snake_grid/core"

// SnakeBody is the ordered list of cells a snake occupies, head first.
type SnakeBody struct {
	body    []core.Coord
	heading core.Direction
}

// NewSnake returns a one-cell snake heading right.
func NewSnake(start core.Coord) *SnakeBody {
	return &SnakeBody{
		body:    []core.Coord{start},
		heading: core.Right,
	}
}

func (s *SnakeBody) Head() core.Coord {
	return s.body[0]
}

func (s *SnakeBody) Tail() core.Coord {
	return s.body[len(s.body)-1]
}

func (s *SnakeBody) Len() int {
	return len(s.body)
}

func (s *SnakeBody) Heading() core.Direction {
	return s.heading
}

// Segments returns a copy of the occupied cells, head first.
func (s *SnakeBody) Segments() []core.Coord {
	out := make([]core.Coord, len(s.body))
	copy(out, s.body)
	return out
}

// ProposeMove is the cell the head would enter moving in dir.
func (s *SnakeBody) ProposeMove(dir core.Direction) core.Coord {
	return s.Head().Add(dir.Unit())
}

// CommitMove pushes newHead to the front and drops the tail unless grow is
// set. The destination is assumed to be validated already.
func (s *SnakeBody) CommitMove(newHead core.Coord, grow bool) {
	if grow {
		s.body = append(s.body, core.Coord{})
	}
	copy(s.body[1:], s.body)
	s.body[0] = newHead
}
