package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stressbuster/internal/config"
	"github.com/vovakirdan/stressbuster/internal/storage"
)

// newLogger builds the process logger. Logs go to the given file when set,
// otherwise to fallback. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "stressbuster",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.GameConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.GameConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	if preset != "" {
		config.ApplyPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			return config.GameConfig{}, err
		}
	}
	return cfg, nil
}

// newRand seeds from --seed, or from the clock when it is zero.
func newRand() (*rand.Rand, int64) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// recordHandle bundles the best-score record with what must be released
// when the command ends.
type recordHandle struct {
	record *storage.Record
	store  *storage.Store // nil for in-memory records
	cancel context.CancelFunc
	done   chan struct{}
}

// openRecord opens the best-score record and starts its background flusher.
// If the database cannot be opened the game still runs with an in-memory
// record.
func openRecord(ctx context.Context, cfg config.GameConfig, persist bool, logger *log.Logger) *recordHandle {
	var kv storage.KV = storage.NewMemoryStore()
	h := &recordHandle{done: make(chan struct{})}

	if persist {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open best-score database, scores will not be saved", "path", flagDBPath, "error", err)
		} else {
			h.store = store
			kv = store
		}
	}

	h.record = storage.NewRecord(kv, cfg.Storage.RecordKey, logger)
	h.record.Load(ctx)

	runCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	go func() {
		h.record.Run(runCtx)
		close(h.done)
	}()
	return h
}

// Close flushes the record, stops the flusher and closes the database.
func (h *recordHandle) Close(logger *log.Logger) {
	h.cancel()
	<-h.done

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.record.Close(ctx); err != nil {
		logger.Warn("could not write best score", "error", err)
	}
	if h.store != nil {
		if err := h.store.Close(); err != nil {
			logger.Warn("could not close database", "error", err)
		}
	}
}
