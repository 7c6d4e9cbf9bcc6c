// Package engine drives a simulation at a steady cadence. The cadence comes
// from a pluggable TickSource: a wall-clock interval for headless runs or
// an externally signalled frame for display-synchronized hosts.
package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/stressbuster/internal/core"
)

// TickSource paces a Driver. Next blocks until the next tick is due or ctx
// is done.
type TickSource interface {
	Next(ctx context.Context) error
}

// IntervalSource ticks on a fixed wall-clock interval.
type IntervalSource struct {
	ticker *time.Ticker
}

// NewIntervalSource creates a source ticking rate times per second.
// Non-positive rates fall back to core.DefaultTickRate.
func NewIntervalSource(rate int) *IntervalSource {
	if rate <= 0 {
		rate = core.DefaultTickRate
	}
	return &IntervalSource{ticker: time.NewTicker(time.Second / time.Duration(rate))}
}

// Next waits for the next interval.
func (s *IntervalSource) Next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ticker.C:
		return nil
	}
}

// Stop releases the underlying ticker.
func (s *IntervalSource) Stop() {
	s.ticker.Stop()
}

// FrameSource ticks when its owner signals a displayed frame. Signals that
// arrive while a tick is still pending collapse into it, so a slow consumer
// skips frames instead of building a backlog.
type FrameSource struct {
	ch chan struct{}
}

// NewFrameSource creates an idle frame source.
func NewFrameSource() *FrameSource {
	return &FrameSource{ch: make(chan struct{}, 1)}
}

// Signal requests a tick. It never blocks and reports whether the signal
// was queued rather than coalesced.
func (s *FrameSource) Signal() bool {
	select {
	case s.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

// Next waits for a signalled frame.
func (s *FrameSource) Next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ch:
		return nil
	}
}

// Fixed is a source that allows exactly n ticks and then reports
// ErrExhausted. Headless runs use it to step as fast as possible.
type Fixed struct {
	left int
}

// NewFixed creates a source allowing n ticks.
func NewFixed(n int) *Fixed {
	return &Fixed{left: n}
}

// Next consumes one tick.
func (s *Fixed) Next(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.left <= 0 {
		return ErrExhausted
	}
	s.left--
	return nil
}
