package engine

import (
	"golang.org/x/exp/rand"

	"github.com/kuredoro/snake_grid/core"
)

// FoodPlacer picks the cell for the next piece of food. It must only return
// cells that are Empty on b; ok is false when there are none.
type FoodPlacer interface {
	PlaceFood(b *Board) (pos core.Coord, ok bool)
}

// FoodPlacerFunc adapts a plain function to FoodPlacer.
type FoodPlacerFunc func(b *Board) (core.Coord, bool)

func (f FoodPlacerFunc) PlaceFood(b *Board) (core.Coord, bool) {
	return f(b)
}

// UniformPlacer picks uniformly among the empty cells.
type UniformPlacer struct {
	r *rand.Rand
}

func NewUniformPlacer(seed uint64) *UniformPlacer {
	return &UniformPlacer{r: rand.New(rand.NewSource(seed))}
}

func (p *UniformPlacer) PlaceFood(b *Board) (core.Coord, bool) {
	free := b.EmptyCells()
	if len(free) == 0 {
		return core.Coord{}, false
	}
	return free[p.r.Intn(len(free))], true
}
