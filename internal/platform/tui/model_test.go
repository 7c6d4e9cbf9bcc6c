package tui

import (
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stressbuster/internal/config"
	"github.com/vovakirdan/stressbuster/internal/core"
)

type fakeGame struct {
	mu      sync.Mutex
	events  []core.Event
	renders int
}

func (g *fakeGame) Update() {}

func (g *fakeGame) Render(dst core.Surface) {
	g.mu.Lock()
	g.renders++
	g.mu.Unlock()
	w, h := dst.Size()
	dst.FillRect(0, 0, w, h, core.ColorInk)
}

func (g *fakeGame) Push(ev core.Event) {
	g.mu.Lock()
	g.events = append(g.events, ev)
	g.mu.Unlock()
}

func (g *fakeGame) pushed() []core.Event {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]core.Event(nil), g.events...)
}

func newTestModel(g *fakeGame, w, h int) Model {
	return NewModel(Options{
		Game:     g,
		Viewport: config.DefaultGameConfig().Viewport,
		FPS:      30,
		DuckHold: 50 * time.Millisecond,
		Width:    w,
		Height:   h,
	})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(Options{
		Game:     &fakeGame{},
		Viewport: config.DefaultGameConfig().Viewport,
		Width:    80,
		Height:   24,
	})
	if m.fps != core.DefaultTickRate {
		t.Errorf("fps = %d, expected %d", m.fps, core.DefaultTickRate)
	}
	if m.duckHold != defaultDuckHold {
		t.Errorf("duck hold = %v, expected %v", m.duckHold, defaultDuckHold)
	}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want KeyAction
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, KeyPrimary},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, KeyPrimary},
		{"w", keyRune('w'), KeyPrimary},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, KeyDuck},
		{"s", keyRune('s'), KeyDuck},
		{"q", keyRune('q'), KeyQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, KeyQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, KeyScreenshot},
		{"x", keyRune('x'), KeyNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	click := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if MapMouse(click) != core.EventPrimary {
		t.Error("left click should be primary input")
	}
	release := tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if MapMouse(release) != core.EventNone {
		t.Error("mouse release should be ignored")
	}
	right := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if MapMouse(right) != core.EventNone {
		t.Error("right click should be ignored")
	}
}

func TestPrimaryKeyPushesEvent(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, 80, 24)

	next, _ := m.Update(keyRune('w'))
	next.(Model).Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	got := g.pushed()
	if len(got) != 2 || got[0] != core.EventPrimary || got[1] != core.EventPrimary {
		t.Errorf("pushed %v, expected two primary events", got)
	}
}

func TestDuckHoldEmulation(t *testing.T) {
	g := &fakeGame{}
	var tm tea.Model = newTestModel(g, 80, 24)

	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyDown})
	tm, _ = tm.Update(tea.KeyMsg{Type: tea.KeyDown}) // key repeat
	if got := g.pushed(); len(got) != 1 || got[0] != core.EventDuckDown {
		t.Fatalf("repeat should not re-send duck-down, got %v", got)
	}

	// A release scheduled by the first press is stale.
	tm, _ = tm.Update(duckReleaseMsg{seq: 1})
	if len(g.pushed()) != 1 {
		t.Fatal("stale release ended the hold")
	}

	tm, _ = tm.Update(duckReleaseMsg{seq: 2})
	got := g.pushed()
	if len(got) != 2 || got[1] != core.EventDuckUp {
		t.Fatalf("expected duck-up after the hold, got %v", got)
	}

	// A later release message for the same hold is ignored.
	tm.Update(duckReleaseMsg{seq: 2})
	if len(g.pushed()) != 2 {
		t.Error("duck-up sent twice")
	}
}

func TestPrimaryReleasesDuck(t *testing.T) {
	g := &fakeGame{}
	var tm tea.Model = newTestModel(g, 80, 24)

	tm, _ = tm.Update(keyRune('s'))
	tm.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	want := []core.Event{core.EventDuckDown, core.EventDuckUp, core.EventPrimary}
	got := g.pushed()
	if len(got) != len(want) {
		t.Fatalf("pushed %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestQuitStopsDriver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, 80, 24)

	next, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.Driver().Stopped() {
		t.Error("quit should stop the driver")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestSmallTerminalSkipsRender(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, 20, 5)

	m.Driver().Step()
	if g.renders != 0 {
		t.Error("render should be skipped on a tiny terminal")
	}
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("tiny terminal should show a warning")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	m.Driver().Step()
	if g.renders != 1 {
		t.Errorf("renders after resize = %d, expected 1", g.renders)
	}
	if !strings.Contains(m.View(), string(core.FillRune)) {
		t.Error("view should show the rendered frame")
	}
}

func TestTickSignalsFrame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, 80, 24)

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Frames().Signal() {
		t.Error("tick should have queued a frame already")
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'a', core.ColorInk)
	s.SetColored(1, 0, 'b', core.ColorInk)
	s.SetColored(2, 1, 'c', core.ColorAccent)

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	for _, r := range "abc" {
		if !strings.ContainsRune(out, r) {
			t.Errorf("output missing %q", r)
		}
	}
}
