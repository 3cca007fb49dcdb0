package console_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/kuredoro/snake_grid/core"
	"github.com/kuredoro/snake_grid/engine"
	"github.com/kuredoro/snake_grid/engine/console"
)

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func AssertSimulationScreen(t *testing.T, got tcell.SimulationScreen, want []string) {
	t.Helper()

	gotCells, w, h := got.GetContents()
	wantCells, wantWidth, wantHeight := SimCellsFromStrings(want)

	if w != wantWidth || h != wantHeight {
		t.Fatalf("got simulation screen of size %dx%d, want %dx%d", w, h, wantWidth, wantHeight)
		return
	}

	if len(gotCells) != len(wantCells) {
		t.Fatalf("got simulation screen that contains %d cells, want %d, even though the "+
			"reported dimensions (%dx%d) coincide", len(gotCells), len(wantCells), w, h)
	}

	for i := range gotCells {
		if len(gotCells[i].Runes) == 0 && len(wantCells[i].Runes) == 1 && wantCells[i].Runes[0] == ' ' {
			continue
		}

		if !runesEqual(gotCells[i].Runes, wantCells[i].Runes) {
			t.Errorf("at %dx%d got simcell with contents %q, want %q", i%w+1, i/w+1,
				string(gotCells[i].Runes), string(wantCells[i].Runes))
		}
	}
}

func SimCellsFromStrings(rows []string) ([]tcell.SimCell, int, int) {
	if len(rows) == 0 {
		return nil, 0, 0
	}

	width := len([]rune(rows[0]))
	for i := range rows {
		if n := len([]rune(rows[i])); n != width {
			panic(fmt.Sprintf("inconsistent simulation screen row dimensions: "+
				"row #1 being %d columns wide, while row #%d being %d",
				width, i+1, n))
		}
	}

	cells := make([]tcell.SimCell, len(rows)*width)
	for y := range rows {
		for x, r := range []rune(rows[y]) {
			cells[width*y+x].Runes = []rune{r}
		}
	}

	return cells, width, len(rows)
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()

	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(s.Fini)

	s.SetSize(w, h)
	return s
}

func newGame(t *testing.T, w, h int, food ...core.Coord) *engine.Game {
	t.Helper()

	placer := engine.FoodPlacerFunc(func(b *engine.Board) (core.Coord, bool) {
		if len(food) == 0 {
			return core.Coord{}, false
		}
		p := food[0]
		food = food[1:]
		return p, true
	})

	g, err := engine.New(w, h, engine.WithLogger(zerolog.Nop()), engine.WithFoodPlacer(placer))
	if err != nil {
		t.Fatalf("engine.New(%d, %d): %v", w, h, err)
	}
	return g
}

// screenRows pads every row with spaces up to width runes.
func screenRows(width int, rows ...string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r + strings.Repeat(" ", width-utf8.RuneCountInString(r))
	}
	return out
}

func TestView(t *testing.T) {
	t.Run("fresh board", func(t *testing.T) {
		s := newScreen(t, 26, 6)
		g := newGame(t, 5, 5)

		console.NewView(s).Draw(g)
		s.Show()

		AssertSimulationScreen(t, s, screenRows(26,
			"┌───┐",
			"│   │",
			"│ ◆ │",
			"│   │",
			"└───┘",
			"paused  length 1  steps 0",
		))
	})

	t.Run("snake, food and offset", func(t *testing.T) {
		s := newScreen(t, 30, 9)
		g := newGame(t, 7, 7, core.Coord{X: 4, Y: 3}, core.Coord{X: 5, Y: 3}, core.Coord{X: 1, Y: 5})

		g.Play(core.Right)
		g.AdvanceTick()
		g.AdvanceTick()

		v := console.NewView(s)
		v.Origin = core.Coord{X: 2, Y: 1}
		v.Draw(g)
		s.Show()

		AssertSimulationScreen(t, s, screenRows(30,
			"",
			"  ┌─────┐",
			"  │     │",
			"  │     │",
			"  │  ▒█◆│",
			"  │     │",
			"  │#    │",
			"  └─────┘",
			"  playing  length 3  steps 2",
		))
	})

	t.Run("game over status", func(t *testing.T) {
		s := newScreen(t, 42, 6)
		g := newGame(t, 5, 5, core.Coord{X: 1, Y: 1})

		g.Play(core.Right)
		g.AdvanceTick()
		g.AdvanceTick()

		console.NewView(s).Draw(g)
		s.Show()

		AssertSimulationScreen(t, s, screenRows(42,
			"┌───┐",
			"│#  │",
			"│  ◆│",
			"│   │",
			"└───┘",
			"game over (border hit)  length 1  steps 1",
		))
	})
}

func TestDirectionFor(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want core.Direction
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.Up, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.Left, true},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), core.Down, true},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), core.Right, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}

	for _, c := range cases {
		got, ok := console.DirectionFor(c.ev)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("%s: got %v, %v; want %v, %v", c.ev.Name(), got, ok, c.want, c.ok)
		}
	}
}

func TestSession(t *testing.T) {
	t.Run("arrow starts the game and escape quits", func(t *testing.T) {
		s := newScreen(t, 20, 10)
		g := newGame(t, 7, 7, core.Coord{X: 1, Y: 1})

		s.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
		s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

		session := console.NewSession(s, g)
		session.SetLogger(zerolog.Nop())
		session.TickInterval = time.Hour

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := session.Run(ctx); err != nil {
			t.Fatalf("Run: %v", err)
		}

		if g.State().Phase != engine.Playing || g.Direction() != core.Up {
			t.Errorf("after the up arrow: state %v direction %v", g.State(), g.Direction())
		}
	})

	t.Run("context cancellation stops the loop", func(t *testing.T) {
		s := newScreen(t, 20, 10)
		g := newGame(t, 7, 7, core.Coord{X: 1, Y: 1})

		session := console.NewSession(s, g)
		session.SetLogger(zerolog.Nop())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := session.Run(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("got %v, want context.Canceled", err)
		}
	})
}
