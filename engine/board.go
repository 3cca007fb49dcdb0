package engine

import (
	"fmt"
	"strings"

	"github.com/kuredoro/snake_grid/core"
)

// MinDimension is the smallest width or height a board can have.
const MinDimension = 5

// Board is a row-major grid of cells, index = y*width + x. The perimeter is
// Border and stays that way for the board's lifetime.
type Board struct {
	width, height int
	cells         []Cell
}

// NewBoard builds a bordered board with the snake head in the middle.
func NewBoard(width, height int) (*Board, error) {
	if width < MinDimension || height < MinDimension {
		return nil, &core.DimensionError{
			Width:  width,
			Height: height,
			Min:    MinDimension,
			Err:    core.ErrInvalidDimensions,
		}
	}

	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}

	for i := range b.cells {
		if b.onPerimeter(b.CoordsOf(i)) {
			b.cells[i] = BorderCell()
		}
	}

	b.cells[b.IndexOf(b.Center().X, b.Center().Y)] = SnakeCell(Head, 1)

	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) Len() int    { return len(b.cells) }

// Center is (width/2, height/2) with integer division.
func (b *Board) Center() core.Coord {
	return core.Coord{X: b.width / 2, Y: b.height / 2}
}

func (b *Board) IndexOf(x, y int) int {
	return y*b.width + x
}

func (b *Board) CoordsOf(index int) core.Coord {
	return core.Coord{X: index % b.width, Y: index / b.width}
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); ok is false outside the board.
func (b *Board) Get(x, y int) (Cell, bool) {
	if !b.InBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[b.IndexOf(x, y)], true
}

func (b *Board) GetIndex(i int) (Cell, bool) {
	if i < 0 || i >= len(b.cells) {
		return Cell{}, false
	}
	return b.cells[i], true
}

func (b *Board) At(c core.Coord) (Cell, bool) {
	return b.Get(c.X, c.Y)
}

// Set overwrites the cell at (x, y). Border cells can be neither
// overwritten nor created.
func (b *Board) Set(x, y int, cell Cell) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("set cell (%d, %d): %w", x, y, core.ErrOutOfBounds)
	}

	i := b.IndexOf(x, y)
	if b.cells[i].Kind == Border || cell.Kind == Border {
		return fmt.Errorf("set cell (%d, %d) to %v: %w", x, y, cell, core.ErrBorderImmutable)
	}

	b.cells[i] = cell
	return nil
}

// EmptyCells returns the coordinates of every Empty cell in row-major order.
func (b *Board) EmptyCells() []core.Coord {
	var free []core.Coord
	for i, c := range b.cells {
		if c.Kind == Empty {
			free = append(free, b.CoordsOf(i))
		}
	}
	return free
}

func (b *Board) onPerimeter(c core.Coord) bool {
	return c.X == 0 || c.Y == 0 || c.X == b.width-1 || c.Y == b.height-1
}

// String draws the board one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)

	for i, c := range b.cells {
		sb.WriteRune(c.Rune())
		if (i+1)%b.width == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
