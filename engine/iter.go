package engine

import (
	"iter"

	"github.com/kuredoro/snake_grid/core"
)

// CellView is one board cell as seen by renderers.
type CellView struct {
	Index int
	Pos   core.Coord
	Cell  Cell
}

// Cells yields every cell in row-major order. The board is read while the
// sequence is ranged over, so each range sees the current state.
func (b *Board) Cells() iter.Seq[CellView] {
	return func(yield func(CellView) bool) {
		for i, c := range b.cells {
			if !yield(CellView{Index: i, Pos: b.CoordsOf(i), Cell: c}) {
				return
			}
		}
	}
}

// All yields (position, cell) pairs in row-major order.
func (b *Board) All() iter.Seq2[core.Coord, Cell] {
	return func(yield func(core.Coord, Cell) bool) {
		for i, c := range b.cells {
			if !yield(b.CoordsOf(i), c) {
				return
			}
		}
	}
}

func (g *Game) Cells() iter.Seq[CellView] {
	return g.board.Cells()
}

func (g *Game) All() iter.Seq2[core.Coord, Cell] {
	return g.board.All()
}
