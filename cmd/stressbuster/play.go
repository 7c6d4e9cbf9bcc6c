package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stressbuster/internal/games/stressbuster"
	"github.com/vovakirdan/stressbuster/internal/platform/tui"
)

var flagDuckHold time.Duration

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the runner in the terminal.

Controls:
  Space/Up/W   - Start, jump
  Down/S       - Duck (held while the key repeats)
  Mouse click  - Start, jump
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, gentler speed curve
  normal - Default tuning
  hard   - Faster start, steeper curve, denser obstacles
  fixed  - No speed progression

Examples:
  stressbuster play
  stressbuster play --difficulty easy
  stressbuster play --config ./my-runner.yaml --log-file /tmp/runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagDuckHold, "duck-hold", 600*time.Millisecond,
		"How long a duck lasts after the last down key repeat")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := openRecord(ctx, cfg, true, logger)
	defer rec.Close(logger)

	rng, seed := newRand()
	logger.Info("starting", "seed", seed, "fps", flagFPS, "difficulty", flagDifficulty, "best", rec.record.Value())

	game := stressbuster.New(stressbuster.Options{
		Config: cfg,
		Rand:   rng,
		Record: rec.record,
		Logger: logger,
	})

	// Get terminal size early so the first frame is drawn at full size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	err = tui.Run(ctx, tui.Options{
		Game:     game,
		Viewport: cfg.Viewport,
		FPS:      flagFPS,
		DuckHold: flagDuckHold,
		Width:    width,
		Height:   height,
		Logger:   logger,
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("running game: %w", err)
	}

	snap := game.Snapshot()
	logger.Info("exiting", "score", snap.Score, "best", snap.HighScore)
	return nil
}
