package storage

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Record is the persisted best score: one non-negative integer stored as
// decimal text under a fixed key. It only ever moves upward until cleared.
//
// Set is cheap and never touches the store; the write happens on Flush,
// which the background Run loop calls whenever the value changes. After
// Close no further writes are issued.
type Record struct {
	kv     KV
	key    string
	logger *log.Logger

	mu        sync.Mutex
	value     int
	persisted int
	closed    bool
	unread    bool // stored value unknown; Flush re-reads before writing

	flushMu sync.Mutex // serializes writers
	dirty   chan struct{}
}

// NewRecord creates a record bound to key in kv. A nil logger discards.
func NewRecord(kv KV, key string, logger *log.Logger) *Record {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Record{
		kv:     kv,
		key:    key,
		logger: logger,
		dirty:  make(chan struct{}, 1),
	}
}

// ParseScore converts stored text to a score. Absent, malformed and negative
// values read as zero.
func ParseScore(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Load reads the stored value. Read failures and malformed values are logged
// and treated as zero; startup never fails because of the record. After a
// read failure the stored value may still be higher, so the next Flush reads
// it again before writing.
func (r *Record) Load(ctx context.Context) int {
	raw, ok, err := r.kv.Get(ctx, r.key)
	v := 0
	switch {
	case err != nil:
		r.logger.Warn("could not read best score", "key", r.key, "error", err)
	case ok:
		v = r.parse(raw)
	}

	r.mu.Lock()
	r.value = v
	r.persisted = v
	r.unread = err != nil
	r.mu.Unlock()
	return v
}

func (r *Record) parse(raw string) int {
	v := ParseScore(raw)
	if v == 0 && strings.TrimSpace(raw) != "0" {
		r.logger.Warn("ignoring malformed best score", "key", r.key, "value", raw)
	}
	return v
}

// reconcile reads the stored value after a failed Load and adopts it when it
// is higher than v. It reports whether v still needs writing.
func (r *Record) reconcile(ctx context.Context, v int) (bool, error) {
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return false, err
	}
	stored := 0
	if ok {
		stored = r.parse(raw)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.unread = false
	r.persisted = stored
	if stored > r.value {
		r.value = stored
	}
	return stored < v, nil
}

// Value returns the best score currently known.
func (r *Record) Value() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// Set raises the record to v. Lower or equal values are ignored, as is any
// call after Close. It reports whether the record changed.
func (r *Record) Set(v int) bool {
	r.mu.Lock()
	if r.closed || v <= r.value {
		r.mu.Unlock()
		return false
	}
	r.value = v
	r.mu.Unlock()

	select {
	case r.dirty <- struct{}{}:
	default: // A flush is already pending and will pick up the new value
	}
	return true
}

// Flush synchronously writes the current value if it differs from the last
// one written. Repeating it is harmless. A stored value higher than the
// current one is never overwritten.
func (r *Record) Flush(ctx context.Context) error {
	r.flushMu.Lock()
	defer r.flushMu.Unlock()

	r.mu.Lock()
	if r.closed || r.value == r.persisted {
		r.mu.Unlock()
		return nil
	}
	v, unread := r.value, r.unread
	r.mu.Unlock()

	if unread {
		write, err := r.reconcile(ctx, v)
		if err != nil {
			return err
		}
		if !write {
			r.logger.Debug("kept higher stored best score", "key", r.key, "value", r.Value())
			return nil
		}
	}

	if err := r.kv.Set(ctx, r.key, strconv.Itoa(v)); err != nil {
		return err
	}

	r.mu.Lock()
	r.persisted = v
	r.mu.Unlock()
	r.logger.Debug("best score written", "key", r.key, "value", v)
	return nil
}

// Run flushes in the background each time the value changes, until ctx is
// cancelled. Write failures are logged and retried on the next change.
func (r *Record) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.dirty:
			if err := r.Flush(ctx); err != nil && ctx.Err() == nil {
				r.logger.Warn("could not write best score", "key", r.key, "error", err)
			}
		}
	}
}

// Close writes any pending value and then stops all further writes.
func (r *Record) Close(ctx context.Context) error {
	err := r.Flush(ctx)

	r.flushMu.Lock()
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.flushMu.Unlock()
	return err
}

// Clear deletes the stored record and resets the known value to zero.
func (r *Record) Clear(ctx context.Context) error {
	r.flushMu.Lock()
	defer r.flushMu.Unlock()

	if err := r.kv.Delete(ctx, r.key); err != nil {
		return err
	}
	r.mu.Lock()
	r.value = 0
	r.persisted = 0
	r.unread = false
	r.mu.Unlock()
	return nil
}
