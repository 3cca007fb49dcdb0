// Package engine is the snake simulation: a bordered board, one snake and
// the tick rule that moves it. It performs no I/O and has no internal
// locking; hosts calling it from several goroutines must serialize calls.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/snake_grid/core"
)

type Phase int

const (
	Paused Phase = iota
	Playing
	Over
)

func (p Phase) String() string {
	switch p {
	case Paused:
		return "paused"
	case Playing:
		return "playing"
	case Over:
		return "game over"
	default:
		return "unknown"
	}
}

// State is the game phase plus, once the game is over, the reason.
type State struct {
	Phase  Phase
	Reason core.GameOverReason
}

func (s State) IsOver() bool {
	return s.Phase == Over
}

func (s State) String() string {
	if s.Phase == Over {
		return fmt.Sprintf("%v (%v)", s.Phase, s.Reason)
	}
	return s.Phase.String()
}

// Game owns the board and the snake and applies the tick rule.
type Game struct {
	id    uuid.UUID
	board *Board
	snake *SnakeBody
	state State
	steps int

	food    core.Coord
	hasFood bool

	placer   FoodPlacer
	observer func(event interface{})
	log      zerolog.Logger
}

type Option func(*Game)

func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithSeed makes food placement reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) { g.placer = NewUniformPlacer(seed) }
}

func WithFoodPlacer(p FoodPlacer) Option {
	return func(g *Game) { g.placer = p }
}

// WithObserver registers fn to receive core.Tick, core.NewFood,
// core.FoodEaten and core.GameOver events. fn runs synchronously inside
// Play and AdvanceTick and must not call back into the game.
func WithObserver(fn func(event interface{})) Option {
	return func(g *Game) { g.observer = fn }
}

func WithID(id uuid.UUID) Option {
	return func(g *Game) { g.id = id }
}

// New builds a paused game on a width x height board. The only failure is
// a board smaller than MinDimension in either direction.
func New(width, height int, opts ...Option) (*Game, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		id:    uuid.New(),
		board: board,
		snake: NewSnake(board.Center()),
		state: State{Phase: Paused},
		log:   log.Logger,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.placer == nil {
		g.placer = NewUniformPlacer(uint64(time.Now().UnixNano()))
	}

	g.log = g.log.With().Stringer("game", g.id).Logger()

	return g, nil
}

func (g *Game) ID() uuid.UUID { return g.id }

func (g *Game) State() State { return g.state }

// Steps counts the ticks in which the snake moved.
func (g *Game) Steps() int { return g.steps }

func (g *Game) Dimensions() (width, height int) {
	return g.board.Width(), g.board.Height()
}

func (g *Game) Head() core.Coord { return g.snake.Head() }

func (g *Game) Tail() core.Coord { return g.snake.Tail() }

func (g *Game) Length() int { return g.snake.Len() }

func (g *Game) Direction() core.Direction { return g.snake.Heading() }

// Segments returns the snake's cells, head first.
func (g *Game) Segments() []core.Coord { return g.snake.Segments() }

// Food returns the current food position, if any.
func (g *Game) Food() (core.Coord, bool) { return g.food, g.hasFood }

func (g *Game) Cell(c core.Coord) (Cell, bool) { return g.board.At(c) }

func (g *Game) String() string { return g.board.String() }

// Play starts (or resumes) a paused game heading in dir. Food is placed if
// the board has none yet.
func (g *Game) Play(dir core.Direction) {
	if g.state.Phase != Paused {
		return
	}

	g.snake.heading = Arbitrate(g.snake.heading, dir, g.snake.Len())
	g.state = State{Phase: Playing}

	g.log.Info().
		Stringer("direction", g.snake.heading).
		Int("width", g.board.Width()).
		Int("height", g.board.Height()).
		Msg("Game started")

	if !g.hasFood && !g.spawnFood() {
		g.finish(core.PlaygroundFilled)
	}
}

// Pause stops a playing game; AdvanceTick does nothing until Play.
func (g *Game) Pause() {
	if g.state.Phase != Playing {
		return
	}

	g.state = State{Phase: Paused}
	g.log.Info().Int("step", g.steps).Msg("Game paused")
}

// SetDirection requests a turn and returns the heading now in effect.
// Reversals are rejected once the snake is longer than one cell. After
// the game is over requests are ignored.
func (g *Game) SetDirection(dir core.Direction) core.Direction {
	if g.state.IsOver() {
		return g.snake.heading
	}

	effective := Arbitrate(g.snake.heading, dir, g.snake.Len())
	if effective != dir {
		g.log.Debug().
			Stringer("current", g.snake.heading).
			Stringer("requested", dir).
			Msg("Turn rejected")
	}

	g.snake.heading = effective
	return effective
}

// AdvanceTick moves the snake one cell and returns the resulting state.
// It does nothing unless the game is playing. Collisions end the game and
// leave the board as it was before the tick.
func (g *Game) AdvanceTick() State {
	if g.state.Phase != Playing {
		return g.state
	}

	next := g.snake.ProposeMove(g.snake.heading)

	cell, ok := g.board.At(next)
	switch {
	case !ok || cell.Kind == Border:
		return g.finish(core.BorderHit)
	case cell.Kind == Snake && next != g.snake.Tail():
		// The tail leaves its cell during this tick, so only the rest bites.
		return g.finish(core.SelfBite)
	}

	grow := cell.Kind == Food
	if !grow {
		tail := g.snake.Tail()
		g.put(tail, EmptyCell())
	}

	g.snake.CommitMove(next, grow)
	g.renumber()
	g.steps++

	g.log.Debug().
		Int("step", g.steps).
		Stringer("head", next).
		Int("length", g.snake.Len()).
		Msg("Snake moved")

	g.emit(core.Tick{GameID: g.id, Step: g.steps, Head: next, Length: g.snake.Len()})

	if grow {
		g.hasFood = false

		g.log.Info().
			Stringer("pos", next).
			Int("length", g.snake.Len()).
			Msg("Food eaten")
		g.emit(core.FoodEaten{GameID: g.id, Pos: next, Length: g.snake.Len()})

		if !g.spawnFood() {
			return g.finish(core.PlaygroundFilled)
		}
	}

	return g.state
}

// renumber rewrites every snake cell so the head is Segment == length and
// the tail is Segment == 1.
func (g *Game) renumber() {
	n := len(g.snake.body)
	for i, p := range g.snake.body {
		role := Body
		switch {
		case i == 0:
			role = Head
		case i == n-1:
			role = Tail
		}
		g.put(p, SnakeCell(role, n-i))
	}
}

func (g *Game) spawnFood() bool {
	pos, ok := g.placer.PlaceFood(g.board)
	if !ok {
		return false
	}

	if c, _ := g.board.At(pos); c.Kind != Empty {
		g.log.Error().
			Stringer("pos", pos).
			Stringer("cell", c).
			Msg("Food placer picked an occupied cell")
		return false
	}

	g.put(pos, FoodCell())
	g.food, g.hasFood = pos, true

	g.log.Debug().Stringer("pos", pos).Msg("New food")
	g.emit(core.NewFood{GameID: g.id, Pos: pos})

	return true
}

func (g *Game) finish(reason core.GameOverReason) State {
	g.state = State{Phase: Over, Reason: reason}

	g.log.Info().
		Stringer("reason", reason).
		Int("step", g.steps).
		Int("length", g.snake.Len()).
		Msg("Game over")

	g.emit(core.GameOver{GameID: g.id, Reason: reason, Step: g.steps, Length: g.snake.Len()})

	return g.state
}

func (g *Game) put(c core.Coord, cell Cell) {
	if err := g.board.Set(c.X, c.Y, cell); err != nil {
		g.log.Err(err).Msg("Board update")
	}
}

func (g *Game) emit(event interface{}) {
	if g.observer != nil {
		g.observer(event)
	}
}
