package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stressbuster/internal/config"
	"github.com/vovakirdan/stressbuster/internal/core"
	"github.com/vovakirdan/stressbuster/internal/engine"
)

// Terminal limits below which frames are skipped.
const (
	MinWidth  = 40
	MinHeight = 10

	footerLines     = 1
	defaultDuckHold = 600 * time.Millisecond
)

// Game is what the host drives: a simulation that accepts input events.
type Game interface {
	engine.Simulation
	Push(ev core.Event)
}

// Options configures the terminal host.
type Options struct {
	Game     Game
	Viewport config.Viewport
	FPS      int
	DuckHold time.Duration // Emulated key-up delay for duck; terminals report no releases
	Width    int           // Initial terminal size, before the first resize message
	Height   int
	Logger   *log.Logger
}

// Model is the Bubble Tea model for the runner.
type Model struct {
	game     Game
	driver   *engine.Driver
	frames   *engine.FrameSource
	screen   *core.Screen
	viewport config.Viewport
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	fps      int
	duckHold time.Duration
	ducking  bool
	duckSeq  int
	width    int
	height   int
	quitting bool
}

// NewModel creates a model and the driver it paces. The driver is not
// running yet; see Run.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = core.DefaultTickRate
	}
	hold := opts.DuckHold
	if hold <= 0 {
		hold = defaultDuckHold
	}

	m := Model{
		game:     opts.Game,
		driver:   engine.NewDriver(opts.Game, logger),
		frames:   engine.NewFrameSource(),
		screen:   core.NewScreen(0, 0),
		viewport: opts.Viewport,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger.WithPrefix("tui"),
		fps:      fps,
		duckHold: hold,
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Driver returns the driver the model paces.
func (m Model) Driver() *engine.Driver {
	return m.driver
}

// Frames returns the frame source the model signals once per tick.
func (m Model) Frames() *engine.FrameSource {
	return m.frames
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev := MapMouse(msg); ev != core.EventNone {
			m = m.primary()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case duckReleaseMsg:
		if m.ducking && msg.seq == m.duckSeq {
			m.ducking = false
			m.game.Push(core.EventDuckUp)
		}
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		m.frames.Signal()
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case KeyQuit:
		m.quitting = true
		m.driver.Stop()
		return m, tea.Quit
	case KeyScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	case KeyPrimary:
		m = m.primary()
	case KeyDuck:
		// Key repeat keeps extending the hold; the release fires once
		// repeats stop.
		if !m.ducking {
			m.ducking = true
			m.game.Push(core.EventDuckDown)
		}
		m.duckSeq++
		return m, duckReleaseCmd(m.duckHold, m.duckSeq)
	}
	return m, nil
}

// primary sends the primary input, releasing an emulated duck first.
func (m Model) primary() Model {
	if m.ducking {
		m.ducking = false
		m.duckSeq++
		m.game.Push(core.EventDuckUp)
	}
	m.game.Push(core.EventPrimary)
	return m
}

// resize fits the cell buffer to the terminal. A terminal too small to
// show the scene leaves the driver without a surface.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	rows := h - footerLines
	usable := w >= MinWidth && rows >= MinHeight

	m.driver.Exclusive(func() {
		if usable {
			m.screen.Resize(w, rows)
		} else {
			m.screen.Resize(0, 0)
		}
	})
	if usable {
		m.driver.SetSurface(core.NewCellSurface(m.screen, m.viewport.Width, m.viewport.Height))
	} else {
		m.driver.SetSurface(nil)
	}
	m.logger.Debug("resized", "width", w, "height", h, "usable", usable)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: resolve home: %w", err)
	}
	dir := filepath.Join(home, ".stressbuster", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	var text string
	m.driver.Exclusive(func() { text = m.screen.String() })

	path := filepath.Join(dir, fmt.Sprintf("stressbuster_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the last drawn frame with the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.width < MinWidth || m.height-footerLines < MinHeight {
		msg := warningStyle.Render(fmt.Sprintf("Terminal too small (need %dx%d)", MinWidth, MinHeight+footerLines))
		return lipgloss.JoinVertical(lipgloss.Left, msg, footer)
	}

	var frame string
	m.driver.Exclusive(func() { frame = RenderScreen(m.screen) })
	return strings.Join([]string{frame, footer}, "\n")
}

// Run hosts the game until the user quits or ctx is cancelled. The driver
// runs on its own goroutine, stepping once per frame tick.
func Run(ctx context.Context, opts Options) error {
	model := NewModel(opts)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- model.driver.Run(ctx, model.frames)
	}()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	model.driver.Stop()
	cancel()
	if runErr := <-done; runErr != nil && err == nil {
		err = runErr
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
