// Package autopilot steers a snake without a player: it heads for the food
// along the shortest Manhattan route while refusing moves that end the game.
package autopilot

import (
	"github.com/kuredoro/snake_grid/core"
	"github.com/kuredoro/snake_grid/engine"
)

// Board is the read-only part of a game the pilot looks at.
type Board interface {
	Head() core.Coord
	Tail() core.Coord
	Length() int
	Direction() core.Direction
	Food() (core.Coord, bool)
	Cell(c core.Coord) (engine.Cell, bool)
}

type option struct {
	dir      core.Direction
	dist     int
	freedom  int
	straight bool
}

// Next picks the heading for the coming tick. When every move is fatal the
// current heading is kept.
func Next(b Board) core.Direction {
	cur := b.Direction()
	food, hasFood := b.Food()

	var best *option
	for _, d := range core.Directions {
		if engine.Arbitrate(cur, d, b.Length()) != d {
			continue
		}

		next := b.Head().Add(d.Unit())
		if !safe(b, next) {
			continue
		}

		o := option{dir: d, freedom: freedom(b, next), straight: d == cur}
		if hasFood {
			o.dist = next.Manhattan(food)
		}

		if best == nil || better(o, *best) {
			best = &o
		}
	}

	if best == nil {
		return cur
	}
	return best.dir
}

func better(a, b option) bool {
	// A dead end is worse than any detour.
	if (a.freedom == 0) != (b.freedom == 0) {
		return b.freedom == 0
	}
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.freedom != b.freedom {
		return a.freedom > b.freedom
	}
	return a.straight && !b.straight
}

// safe reports whether the head may enter c on the next tick. The tail
// cell counts as free because the tail moves on during the same tick.
func safe(b Board, c core.Coord) bool {
	cell, ok := b.Cell(c)
	if !ok {
		return false
	}

	switch cell.Kind {
	case engine.Empty, engine.Food:
		return true
	case engine.Snake:
		return c == b.Tail() && b.Length() > 1
	default:
		return false
	}
}

// freedom counts the safe neighbours of c, c's own cell excluded.
func freedom(b Board, c core.Coord) int {
	n := 0
	for _, d := range core.Directions {
		p := c.Add(d.Unit())
		if p == b.Head() {
			continue
		}
		if safe(b, p) {
			n++
		}
	}
	return n
}
