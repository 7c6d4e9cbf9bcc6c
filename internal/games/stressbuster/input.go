package stressbuster

import (
	"sync"

	"github.com/vovakirdan/stressbuster/internal/core"
)

// InputController queues raw input events from any goroutine. The tick
// drains the queue once, in arrival order, so input never mutates a session
// in the middle of an update.
type InputController struct {
	mu    sync.Mutex
	queue []core.Event
}

// NewInputController creates an empty controller.
func NewInputController() *InputController {
	return &InputController{queue: make([]core.Event, 0, 8)}
}

// Push enqueues an event. Safe for concurrent use.
func (c *InputController) Push(ev core.Event) {
	if ev == core.EventNone {
		return
	}
	c.mu.Lock()
	c.queue = append(c.queue, ev)
	c.mu.Unlock()
}

// Drain moves all queued events into buf and returns it.
func (c *InputController) Drain(buf []core.Event) []core.Event {
	c.mu.Lock()
	buf = append(buf, c.queue...)
	c.queue = c.queue[:0]
	c.mu.Unlock()
	return buf
}

// Pending returns how many events are queued.
func (c *InputController) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Resolve maps an event to an action for the given phase. The primary input
// starts a run when frozen and jumps while playing; duck input only matters
// while playing.
func Resolve(phase Phase, ev core.Event) core.Action {
	switch ev {
	case core.EventPrimary:
		if phase == PhasePlaying {
			return core.ActionJump
		}
		return core.ActionStart
	case core.EventDuckDown:
		if phase == PhasePlaying {
			return core.ActionDuckOn
		}
	case core.EventDuckUp:
		if phase == PhasePlaying {
			return core.ActionDuckOff
		}
	}
	return core.ActionNone
}
