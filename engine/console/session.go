// Package console is a terminal front end for the snake engine: a tcell
// view of the board and a small key-driven session loop around it.
package console

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/snake_grid/core"
	"github.com/kuredoro/snake_grid/engine"
	"github.com/kuredoro/snake_grid/engine/autopilot"
)

const DefaultTickInterval = 150 * time.Millisecond

var key2Dir = map[tcell.Key]core.Direction{
	tcell.KeyLeft:  core.Left,
	tcell.KeyRight: core.Right,
	tcell.KeyUp:    core.Up,
	tcell.KeyDown:  core.Down,
}

var rune2Dir = map[rune]core.Direction{
	'a': core.Left,
	'd': core.Right,
	'w': core.Up,
	's': core.Down,
}

// DirectionFor maps arrow keys and WASD to a heading.
func DirectionFor(ev *tcell.EventKey) (core.Direction, bool) {
	if ev.Key() == tcell.KeyRune {
		d, ok := rune2Dir[ev.Rune()]
		return d, ok
	}
	d, ok := key2Dir[ev.Key()]
	return d, ok
}

type Session struct {
	screen tcell.Screen
	view   *View
	game   *engine.Game

	TickInterval time.Duration
	// Autopilot steers the snake on every tick; arrow keys still work
	// but are overridden by the pilot.
	Autopilot bool

	log zerolog.Logger
}

// NewSession binds an initialized screen to a game. The caller owns the
// screen and must Fini it after Run returns.
func NewSession(s tcell.Screen, g *engine.Game) *Session {
	return &Session{
		screen:       s,
		view:         NewView(s),
		game:         g,
		TickInterval: DefaultTickInterval,
		log:          log.Logger.With().Stringer("game", g.ID()).Logger(),
	}
}

func (s *Session) SetLogger(l zerolog.Logger) {
	s.log = l
}

// Run draws the game and feeds it ticks and key presses until the player
// quits (Esc, Ctrl-C, or Enter once the game is over) or ctx is done.
// The first arrow key starts a paused game; space toggles pause.
func (s *Session) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	eventCh := make(chan tcell.Event)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventCh <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(s.TickInterval)
	defer ticker.Stop()

	for {
		s.view.Draw(s.game)
		s.screen.Show()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if s.Autopilot && s.game.State().Phase == engine.Playing {
				s.game.SetDirection(autopilot.Next(s.game))
			}
			s.game.AdvanceTick()
		case ev := <-eventCh:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if s.game.State().IsOver() {
					if ev.Key() == tcell.KeyEnter {
						return nil
					}
					continue
				}

				if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
					s.togglePause()
					continue
				}

				dir, arrow := DirectionFor(ev)
				if !arrow {
					continue
				}

				if s.game.State().Phase == engine.Paused {
					s.game.Play(dir)
				}
				s.log.Debug().
					Stringer("requested", dir).
					Stringer("direction", s.game.SetDirection(dir)).
					Msg("Key pressed")
			}
		}
	}
}

func (s *Session) togglePause() {
	switch s.game.State().Phase {
	case engine.Paused:
		s.game.Play(s.game.Direction())
	case engine.Playing:
		s.game.Pause()
	}
}
