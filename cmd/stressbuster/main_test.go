package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/stressbuster/internal/config"
	"github.com/vovakirdan/stressbuster/internal/games/stressbuster"
	"github.com/vovakirdan/stressbuster/internal/storage"
)

func TestScoreCommandWithEnvironment(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "record.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set(context.Background(), config.DefaultRecordKey, "42"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	t.Setenv("STRESSBUSTER_DB", dbPath)
	t.Setenv("STRESSBUSTER_FPS", "30")
	t.Setenv("STRESSBUSTER_LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"score", "--fps", "45"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("score command failed: %v", err)
	}

	if !strings.Contains(out.String(), "00042") {
		t.Errorf("output %q missing best score", out.String())
	}
	if flagDBPath != dbPath {
		t.Errorf("db path = %q, expected value from environment", flagDBPath)
	}
	if flagFPS != 45 {
		t.Errorf("fps = %d, explicit flag should win over environment", flagFPS)
	}
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	cfg := config.DefaultGameConfig()
	printSummary(&out, 120, 7, stressbuster.Snapshot{Phase: stressbuster.PhaseGameOver, Score: 9, HighScore: 9, Speed: 6}, []int{3, 9}, cfg)

	for _, want := range []string{"Ticks", "120", "Seed", "Runs", "[3 9]"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary missing %q:\n%s", want, out.String())
		}
	}
}
