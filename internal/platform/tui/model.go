package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/omnitrix-arcade/internal/core"
	"github.com/vovakirdan/omnitrix-arcade/internal/registry"
)

// Resizer is implemented by games that can refit to a new terminal size
// without restarting. Other games are reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// Options tunes a game Model.
type Options struct {
	Recorder      *Recorder
	HoldTicks     int    // Ticks a held key stays on after its last press
	ScreenshotDir string // Empty means ~/.omnitrix/screenshots
	AllowBack     bool   // Esc on a paused or finished game returns to the menu
	NoScreenshots bool
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	recorder      *Recorder
	config        core.RuntimeConfig
	keys          *KeyMapper
	latch         *InputLatch
	help          help.Model
	showHelp      bool
	gameState     core.GameState
	screenshotDir string
	allowBack     bool
	noScreenshots bool
	quitting      bool
	backToMenu    bool
	scoreSaved    bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rec := opts.Recorder
	if rec == nil {
		rec = NewRecorder(nil, nil, "", false)
	}
	h := help.New()
	h.ShowAll = true

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:      rec,
		config:        cfg,
		keys:          NewKeyMapper(),
		latch:         NewInputLatch(opts.HoldTicks),
		help:          h,
		screenshotDir: opts.ScreenshotDir,
		allowBack:     opts.AllowBack,
		noScreenshots: opts.NoScreenshots,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	if sa, ok := m.game.(SaveAware); ok {
		sa.UpdateSave(m.recorder.Save())
	}
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Screenshot) && !m.noScreenshots:
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case m.allowBack && key.Matches(msg, keys.Back) && (m.gameState.GameOver || m.gameState.Paused):
		m.backToMenu = true
		return m, tea.Quit
	}

	actions, choice := m.keys.MapKey(msg)
	for _, a := range actions {
		if a == core.ActionRestart && !m.gameState.GameOver {
			continue
		}
		m.latch.Press(a)
	}
	if choice > 0 {
		m.latch.Choose(choice)
	}
	return m, nil
}

// handleResize refits the game to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.latch.Pending(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.latch.Frame())
	m.gameState = result.State

	if result.Result != nil {
		m.recorder.RecordResult(m.game.ID(), *result.Result)
		if sa, ok := m.game.(SaveAware); ok {
			sa.UpdateSave(m.recorder.Save())
		}
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.recorder.RecordScore(m.game.ID(), m.gameState.Score)
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.latch.Release()
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.recorder.logger.Warn("no home directory for screenshots", "error", err)
			return
		}
		dir = filepath.Join(home, ".omnitrix", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.recorder.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.recorder.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.recorder.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if !m.showHelp {
		return out
	}

	// The help block replaces the bottom rows of the game.
	lines := strings.Split(out, "\n")
	helpLines := strings.Split(m.help.View(m.keys.Keys()), "\n")
	start := max(len(lines)-len(helpLines), 0)
	for i, l := range helpLines {
		if start+i < len(lines) {
			lines[start+i] = l
		}
	}
	return strings.Join(lines, "\n")
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	_, err := RunGame(game, cfg, opts)
	return err
}

// RunGame runs game until the player quits or goes back, and reports
// whether they asked to leave the program entirely.
func RunGame(game registry.Game, cfg core.RuntimeConfig, opts Options) (quit bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.IsQuitting(), nil
	}
	return false, nil
}
