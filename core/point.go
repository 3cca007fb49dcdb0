package core

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any numeric type a Point2D can be built from.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point2D is a pair of coordinates with component-wise arithmetic.
type Point2D[T Number] struct {
	X, Y T
}

// Coord is a board position. X grows to the right, Y grows downward.
type Coord = Point2D[int]

func NewPoint[T Number](x, y T) Point2D[T] {
	return Point2D[T]{X: x, Y: y}
}

// FromArray builds a point from an [x, y] pair.
func FromArray[T Number](xy [2]T) Point2D[T] {
	return Point2D[T]{X: xy[0], Y: xy[1]}
}

func (p Point2D[T]) AsArray() [2]T {
	return [2]T{p.X, p.Y}
}

func (p Point2D[T]) Add(o Point2D[T]) Point2D[T] {
	return Point2D[T]{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point2D[T]) Sub(o Point2D[T]) Point2D[T] {
	return Point2D[T]{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point2D[T]) Mul(o Point2D[T]) Point2D[T] {
	return Point2D[T]{X: p.X * o.X, Y: p.Y * o.Y}
}

// Div divides component-wise. A zero component in o is the caller's problem:
// integer points panic, float points yield Inf or NaN.
func (p Point2D[T]) Div(o Point2D[T]) Point2D[T] {
	return Point2D[T]{X: p.X / o.X, Y: p.Y / o.Y}
}

func (p Point2D[T]) Equal(o Point2D[T]) bool {
	return p.X == o.X && p.Y == o.Y
}

// Manhattan returns |dx| + |dy| between p and o.
func (p Point2D[T]) Manhattan(o Point2D[T]) T {
	dx, dy := p.X-o.X, p.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func (p Point2D[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}
