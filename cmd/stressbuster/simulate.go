package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stressbuster/internal/config"
	"github.com/vovakirdan/stressbuster/internal/core"
	"github.com/vovakirdan/stressbuster/internal/engine"
	"github.com/vovakirdan/stressbuster/internal/games/stressbuster"
)

var (
	flagTicks    int
	flagRealtime bool
	flagPersist  bool
	flagFrame    bool
	flagRestarts int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless autopiloted session",
	Long: `Run the game without a terminal UI. An autopilot jumps cacti and ducks
low pterodactyls. The run ends after --ticks ticks or at game over once
all restarts are used, then prints a summary.

By default ticks run as fast as possible and the best score is kept in
memory; use --realtime to pace ticks at --fps and --persist to update the
best-score database.

Examples:
  stressbuster simulate --ticks 5000 --seed 42
  stressbuster simulate --realtime --frame
  stressbuster simulate --difficulty hard --restarts 3 --persist`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.IntVar(&flagTicks, "ticks", 10000, "Maximum ticks to simulate")
	f.BoolVar(&flagRealtime, "realtime", false, "Pace ticks at --fps instead of running flat out")
	f.BoolVar(&flagPersist, "persist", false, "Write the best score to the database")
	f.BoolVar(&flagFrame, "frame", false, "Print the final frame")
	f.IntVar(&flagRestarts, "restarts", 0, "Runs to start again after game over")
}

// pilotedGame feeds autopilot decisions into a game before every tick and
// ends the simulation once no restarts remain.
type pilotedGame struct {
	game     *stressbuster.Game
	pilot    *stressbuster.Autopilot
	restarts int
	runs     []int
	finish   context.CancelFunc
	over     bool
}

func (p *pilotedGame) Update() {
	snap := p.game.Snapshot()
	if snap.Phase == stressbuster.PhaseGameOver {
		if !p.over {
			p.over = true
			p.runs = append(p.runs, snap.Score)
			if p.restarts <= 0 {
				p.finish()
				return
			}
			p.restarts--
		}
		p.game.Push(core.EventPrimary)
	} else {
		p.over = false
		for _, ev := range p.pilot.Decide(snap) {
			p.game.Push(ev)
		}
	}
	p.game.Update()
}

func (p *pilotedGame) Render(dst core.Surface) {
	p.game.Render(dst)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("invalid --ticks %d: must be positive", flagTicks)
	}
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	rec := openRecord(ctx, cfg, flagPersist, logger)
	defer rec.Close(logger)

	rng, seed := newRand()
	game := stressbuster.New(stressbuster.Options{
		Config: cfg,
		Rand:   rng,
		Record: rec.record,
		Logger: logger,
	})
	sim := &pilotedGame{
		game:     game,
		pilot:    stressbuster.NewAutopilot(cfg),
		restarts: flagRestarts,
		finish:   cancel,
	}

	driver := engine.NewDriver(sim, logger)
	var screen *core.Screen
	if flagFrame {
		screen = core.NewScreen(100, 25)
		driver.SetSurface(core.NewCellSurface(screen, cfg.Viewport.Width, cfg.Viewport.Height))
	}

	var src engine.TickSource = engine.NewFixed(flagTicks)
	if flagRealtime {
		interval := engine.NewIntervalSource(flagFPS)
		defer interval.Stop()
		src = &limited{src: interval, left: flagTicks}
	}

	logger.Info("simulating", "seed", seed, "ticks", flagTicks, "difficulty", flagDifficulty)
	if err := driver.Run(ctx, src); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	driver.Stop()

	if screen != nil {
		fmt.Fprintln(cmd.OutOrStdout(), screen.String())
	}
	printSummary(cmd.OutOrStdout(), driver.Ticks(), seed, game.Snapshot(), sim.runs, cfg)
	return nil
}

// limited caps another source at a number of ticks.
type limited struct {
	src  engine.TickSource
	left int
}

func (l *limited) Next(ctx context.Context) error {
	if l.left <= 0 {
		return engine.ErrExhausted
	}
	if err := l.src.Next(ctx); err != nil {
		return err
	}
	l.left--
	return nil
}

func printSummary(w io.Writer, ticks uint64, seed int64, snap stressbuster.Snapshot, runs []int, cfg config.GameConfig) {
	fmt.Fprintf(w, "Simulation summary\n\n")
	fmt.Fprintf(w, "  %-10s %d\n", "Ticks", ticks)
	fmt.Fprintf(w, "  %-10s %d\n", "Seed", seed)
	fmt.Fprintf(w, "  %-10s %s\n", "Phase", snap.Phase)
	fmt.Fprintf(w, "  %-10s %d\n", "Score", snap.Score)
	fmt.Fprintf(w, "  %-10s %d\n", "Best", snap.HighScore)
	fmt.Fprintf(w, "  %-10s %.1f / %.1f\n", "Speed", snap.Speed, cfg.Scoring.MaxSpeed)
	fmt.Fprintf(w, "  %-10s %d\n", "Obstacles", len(snap.Obstacles))
	if len(runs) > 0 {
		fmt.Fprintf(w, "  %-10s %v\n", "Runs", runs)
	}
}
