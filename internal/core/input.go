package core

// Event is a primitive input event delivered by a host, abstracted from the
// physical key, button or pointer that produced it.
type Event int

const (
	EventNone     Event = iota
	EventPrimary        // Space, Up, pointer click - start/restart or jump
	EventDuckDown       // Down pressed
	EventDuckUp         // Down released
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventPrimary:
		return "Primary"
	case EventDuckDown:
		return "DuckDown"
	case EventDuckUp:
		return "DuckUp"
	default:
		return "None"
	}
}

// Action is a semantic game action resolved from an Event against the
// current phase.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Start from Waiting or restart from GameOver
	ActionJump           // Jump while playing
	ActionDuckOn         // Begin ducking
	ActionDuckOff        // Stop ducking
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "Start"
	case ActionJump:
		return "Jump"
	case ActionDuckOn:
		return "DuckOn"
	case ActionDuckOff:
		return "DuckOff"
	default:
		return "None"
	}
}
