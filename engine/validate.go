package engine

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/kuredoro/snake_grid/core"
)

// Validate checks that the board and the snake agree with each other and
// reports every violation found.
func (g *Game) Validate() error {
	var merr *multierror.Error

	b := g.board
	for i, c := range b.cells {
		pos := b.CoordsOf(i)
		if b.onPerimeter(pos) != (c.Kind == Border) {
			merr = multierror.Append(merr, fmt.Errorf("cell %v: unexpected %v", pos, c))
		}
	}

	body := g.snake.body
	seen := make(map[core.Coord]struct{}, len(body))
	for i, p := range body {
		if !b.InBounds(p.X, p.Y) {
			merr = multierror.Append(merr, fmt.Errorf("segment %d at %v: %w", i, p, core.ErrOutOfBounds))
			continue
		}

		if _, dup := seen[p]; dup {
			merr = multierror.Append(merr, fmt.Errorf("segment %d at %v: cell occupied twice", i, p))
		}
		seen[p] = struct{}{}

		if i > 0 && p.Manhattan(body[i-1]) != 1 {
			merr = multierror.Append(merr, fmt.Errorf("segment %d at %v: not adjacent to %v", i, p, body[i-1]))
		}

		want := SnakeCell(Body, len(body)-i)
		switch {
		case i == 0:
			want.Role = Head
		case i == len(body)-1:
			want.Role = Tail
		}
		if got, _ := b.At(p); got != want {
			merr = multierror.Append(merr, fmt.Errorf("segment %d at %v: board has %v, want %v", i, p, got, want))
		}
	}

	snakeCells, foodCells := 0, 0
	for _, c := range b.cells {
		switch c.Kind {
		case Snake:
			snakeCells++
		case Food:
			foodCells++
		}
	}

	if snakeCells != len(body) {
		merr = multierror.Append(merr, fmt.Errorf("board has %d snake cells, snake has %d segments", snakeCells, len(body)))
	}

	if foodCells > 1 {
		merr = multierror.Append(merr, fmt.Errorf("board has %d food cells", foodCells))
	}

	if g.hasFood {
		if c, _ := b.At(g.food); c.Kind != Food {
			merr = multierror.Append(merr, fmt.Errorf("food at %v: board has %v", g.food, c))
		}
	}

	return merr.ErrorOrNil()
}
