package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/snake_grid/config"
	"github.com/kuredoro/snake_grid/core"
	"github.com/kuredoro/snake_grid/engine"
	"github.com/kuredoro/snake_grid/engine/autopilot"
	"github.com/kuredoro/snake_grid/engine/console"
)

func main() {
	configFlag := flag.String("config", "", "path to a YAML config file")
	tuiFlag := flag.Bool("tui", false, "play in the terminal instead of a headless run")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configFlag)
	if err != nil {
		printErr("config:", err)
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(cfg.Level())
	if *tuiFlag {
		// Log lines would tear the screen apart.
		log.Logger = log.Logger.Level(zerolog.Disabled)
	}

	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	eaten := 0
	observer := func(event interface{}) {
		if _, ok := event.(core.FoodEaten); ok {
			eaten++
		}
	}

	g, err := engine.New(cfg.Width, cfg.Height, engine.WithSeed(seed), engine.WithObserver(observer))
	if err != nil {
		printErr("engine:", err)
		os.Exit(1)
	}

	log.Info().
		Stringer("game", g.ID()).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Uint64("seed", seed).
		Msg("Game created")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *tuiFlag {
		err = runTUI(ctx, g, cfg)
	} else {
		runHeadless(ctx, g, cfg)
		fmt.Print(g)
	}
	if err != nil {
		printErr("tui:", err)
		os.Exit(1)
	}

	if err := g.Validate(); err != nil {
		log.Err(err).Msg("Board is inconsistent")
	}

	cfmt.Printf("{{%v}}::lightGreen|bold  length {{%d}}::bold  steps {{%d}}::bold  food eaten {{%d}}::bold\n",
		g.State(), g.Length(), g.Steps(), eaten)
}

func runHeadless(ctx context.Context, g *engine.Game, cfg config.Config) {
	g.Play(g.Direction())

	for i := 0; cfg.MaxTicks == 0 || i < cfg.MaxTicks; i++ {
		if ctx.Err() != nil {
			log.Info().Msg("Interrupted")
			return
		}

		if cfg.Autopilot {
			g.SetDirection(autopilot.Next(g))
		}
		if g.AdvanceTick().IsOver() {
			return
		}
	}
}

func runTUI(ctx context.Context, g *engine.Game, cfg config.Config) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	session := console.NewSession(s, g)
	session.TickInterval = cfg.TickInterval
	session.Autopilot = cfg.Autopilot

	err = session.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printErr(header string, err error) {
	cfmt.Printf("{{error:}}::lightRed|bold %s %v\n", header, err)
}
