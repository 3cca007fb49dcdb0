package engine

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/kuredoro/snake_grid/core"
)

func TestValidateReportsCorruption(t *testing.T) {
	g, err := New(7, 7, WithLogger(zerolog.Nop()), WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("fresh game: %v", err)
	}

	// Stray snake cells and a second food cell.
	g.board.cells[g.board.IndexOf(1, 1)] = SnakeCell(Body, 2)
	g.board.cells[g.board.IndexOf(2, 1)] = SnakeCell(Tail, 1)
	g.board.cells[g.board.IndexOf(5, 5)] = FoodCell()
	g.board.cells[g.board.IndexOf(4, 5)] = FoodCell()
	// A hole in the border.
	g.board.cells[g.board.IndexOf(0, 3)] = EmptyCell()
	// A segment outside the board.
	g.snake.body = append(g.snake.body, core.Coord{X: -1, Y: 3})

	err = g.Validate()

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("got %v, want *multierror.Error", err)
	}
	if !errors.Is(err, core.ErrOutOfBounds) {
		t.Errorf("%v does not mention the out of bounds segment", err)
	}

	// Border hole, head numbering, out of bounds segment, snake cell
	// count and food count.
	if len(merr.Errors) != 5 {
		t.Errorf("got %d problems, want 5:\n%v", len(merr.Errors), err)
	}
}
