package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/stressbuster/internal/storage"
)

var flagClear bool

var (
	scoreLabel = lipgloss.NewStyle().Faint(true)
	scoreValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show or clear the best score",
	Long: `Display the best score saved in the database, or delete it with --clear.

Examples:
  stressbuster score
  stressbuster score --clear
  stressbuster score --db ./record.db`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the saved best score")
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening best-score database: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	rec := storage.NewRecord(store, cfg.Storage.RecordKey, logger)
	best := rec.Load(ctx)
	out := cmd.OutOrStdout()

	if flagClear {
		if err := rec.Clear(ctx); err != nil {
			return fmt.Errorf("clearing best score: %w", err)
		}
		fmt.Fprintf(out, "Best score %d cleared.\n", best)
		return nil
	}

	if best == 0 {
		fmt.Fprintln(out, "No best score recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'stressbuster play' to set one!")
		return nil
	}
	fmt.Fprintf(out, "%s %s\n", scoreLabel.Render("Best score:"), scoreValue.Render(fmt.Sprintf("%05d", best)))
	return nil
}
