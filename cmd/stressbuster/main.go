// stressbuster is an endless runner for the terminal: jump the cacti, duck
// the pterodactyls and chase your best score.
//
// Usage:
//
//	stressbuster                 - Play (same as "play")
//	stressbuster play            - Play in the terminal
//	stressbuster simulate        - Run a headless autopiloted session
//	stressbuster score           - Show or clear the best score
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible runs (0 = time based)
//	--db <path>           - Best-score database (default: ~/.stressbuster/record.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
//
// Every global flag can also be set through a STRESSBUSTER_* environment
// variable; an explicit flag wins.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stressbuster/internal/config"
	"github.com/vovakirdan/stressbuster/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stressbuster",
	Short: "StressBuster - an endless runner in your terminal",
	Long: `StressBuster is a terminal endless runner. Jump over cacti, duck under
pterodactyls and watch the world speed up as your score climbs.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Run a headless session driven by an autopilot
  score     - Show or clear the best score

Examples:
  stressbuster
  stressbuster play --difficulty hard
  stressbuster simulate --ticks 5000 --seed 42
  stressbuster score --clear`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnvironment,
	RunE:              runPlay,
}

func init() {
	defaults := config.Environment{
		DBPath:   "~/.stressbuster/record.db",
		FPS:      core.DefaultTickRate,
		LogLevel: "info",
	}

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", defaults.FPS, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", defaults.DBPath, "Path to best-score database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", defaults.LogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoreCmd)
}

// applyEnvironment fills every global flag the user did not set explicitly
// from STRESSBUSTER_* variables.
func applyEnvironment(cmd *cobra.Command, _ []string) error {
	e, err := config.ParseEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("fps") {
		flagFPS = e.FPS
	}
	if !flags.Changed("seed") {
		flagSeed = e.Seed
	}
	if !flags.Changed("db") {
		flagDBPath = e.DBPath
	}
	if !flags.Changed("config") {
		flagConfig = e.ConfigPath
	}
	if !flags.Changed("difficulty") {
		flagDifficulty = e.Difficulty
	}
	if !flags.Changed("log-level") {
		flagLogLevel = e.LogLevel
	}
	if !flags.Changed("log-file") {
		flagLogFile = e.LogFile
	}

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	return nil
}
