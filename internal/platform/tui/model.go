package tui

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Host tuning
const (
	paddleStep  = 10.0 // World units per key press
	flashFrames = 45   // How long event messages stay on screen
)

// Session holds what a game session needs besides the terminal.
type Session struct {
	Config     config.PongConfig
	Difficulty config.DifficultyPreset // Explicit choice; empty uses the saved one
	Store      *storage.Store          // Optional settings store
	Profile    string
	Logger     *log.Logger
}

// eventFeed buffers engine events until the model consumes them.
// Listeners run on the Update goroutine, inside engine.Tick.
type eventFeed struct {
	events []pong.Event
}

func (f *eventFeed) push(ev pong.Event) {
	f.events = append(f.events, ev)
}

func (f *eventFeed) take() []pong.Event {
	out := f.events
	f.events = nil
	return out
}

// Model is the Bubble Tea model for a Pong session.
type Model struct {
	engine     *pong.Engine
	feed       *eventFeed
	screen     *core.Screen
	store      *storage.Store
	profile    string
	difficulty config.DifficultyPreset
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	lastTick   time.Time
	flash      string
	flashLeft  int
	quitting   bool
}

// NewModel builds the engine for a session and wraps it in a model.
// Saved settings for the profile are applied when a store is present.
func NewModel(sess Session, cfg core.RuntimeConfig) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := sess.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.WarnLevel)
	}

	var saved storage.Settings
	haveSaved := false
	if sess.Store != nil {
		st, ok, err := sess.Store.LoadSettings(sess.Profile)
		if err != nil {
			logger.Warn("could not load settings", "profile", sess.Profile, "error", err)
		}
		saved, haveSaved = st, ok
	}

	preset := sess.Difficulty
	if preset == "" && haveSaved {
		if p, err := config.ParseDifficultyPreset(saved.Difficulty); err == nil {
			preset = p
		}
	}
	gameCfg := sess.Config
	config.ApplyPongPreset(&gameCfg, preset)

	engine, err := pong.New(gameCfg, pong.Options{Seed: cfg.Seed, Logger: logger})
	if err != nil {
		return Model{}, err
	}
	if haveSaved {
		if err := engine.SetUserSpeedMultiplier(saved.SpeedMultiplier); err != nil {
			logger.Warn("ignoring saved speed", "profile", sess.Profile, "error", err)
		}
	}

	feed := &eventFeed{}
	engine.Subscribe(feed.push)

	h := help.New()
	h.ShowAll = false

	m := Model{
		engine:     engine,
		feed:       feed,
		screen:     core.NewScreen(cfg.ScreenW, fieldHeight(cfg.ScreenH, false)),
		store:      sess.Store,
		profile:    sess.Profile,
		difficulty: preset,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	if sess.Difficulty != "" {
		m.saveSettings()
	}
	return m, nil
}

// Engine returns the simulation the model drives.
func (m Model) Engine() *pong.Engine {
	return m.engine
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records actions for the next tick. Quit, help and screenshots
// take effect immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, fieldHeight(m.config.ScreenH, m.help.ShowAll))
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// fieldHeight is the terminal height left for the game after the help view.
func fieldHeight(termH int, fullHelp bool) int {
	helpLines := 1
	if fullHelp {
		helpLines = 2
	}
	return max(termH-helpLines, 1)
}

// handleResize keeps the world as is and rescales the view.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldHeight(msg.Height, m.help.ShowAll))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies queued input, advances the engine by the real time
// since the previous frame and turns events into on-screen messages.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.applyInput()

	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now
	m.engine.Tick(elapsed)

	for _, ev := range m.feed.take() {
		if text := m.describe(ev); text != "" {
			m.flash = text
			m.flashLeft = flashFrames
		}
	}
	if m.flashLeft > 0 {
		m.flashLeft--
		if m.flashLeft == 0 {
			m.flash = ""
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// applyInput turns this frame's actions into engine writes.
func (m *Model) applyInput() {
	f := m.inputFrame

	if f.Has(core.ActionRestart) {
		m.engine.Reset()
	}
	if f.Has(core.ActionPause) {
		// Pausing a decided game is not possible; the key just does nothing
		if err := m.engine.TogglePause(); err != nil && !errors.Is(err, pong.ErrGameFinished) {
			m.logger.Warn("pause failed", "error", err)
		}
	}

	if dy := float64(f.Count(core.ActionDown)-f.Count(core.ActionUp)) * paddleStep; dy != 0 {
		if side := m.engine.HumanSide(); side != pong.SideNone {
			//nolint:errcheck // Target is finite and the side is human
			m.engine.SetHumanPaddleTarget(m.engine.PaddleY(side) + dy)
		}
	}

	steps := f.Count(core.ActionSpeedUp) - f.Count(core.ActionSpeedDown)
	if steps != 0 {
		cur := m.engine.UserSpeedMultiplier()
		next := cur + float64(steps)*config.SpeedMultiplierStep
		next = core.ClampF(math.Round(next*10)/10, config.MinSpeedMultiplier, config.MaxSpeedMultiplier)
		if next != cur {
			if err := m.engine.SetUserSpeedMultiplier(next); err != nil {
				m.logger.Warn("speed change rejected", "speed", next, "error", err)
			} else {
				m.saveSettings()
			}
		}
	}
}

// describe returns the on-screen message for an event, or "".
func (m Model) describe(ev pong.Event) string {
	human := m.engine.HumanSide()
	switch e := ev.(type) {
	case pong.GoalScoredEvent:
		if human == pong.SideNone {
			return fmt.Sprintf("%s SCORES", strings.ToUpper(e.Side.String()))
		}
		if e.Side == human {
			return "YOU SCORE"
		}
		return "CPU SCORES"
	case pong.RallyBoostEvent:
		return fmt.Sprintf("RALLY %d  x%.2f", e.Hits, e.Multiplier)
	case pong.GameResetEvent:
		return "NEW GAME"
	}
	return ""
}

// saveSettings stores the profile's speed and difficulty.
func (m Model) saveSettings() {
	if m.store == nil {
		return
	}
	err := m.store.SaveSettings(storage.Settings{
		Profile:         m.profile,
		SpeedMultiplier: m.engine.UserSpeedMultiplier(),
		Difficulty:      string(m.difficulty),
	})
	if err != nil {
		m.logger.Warn("could not save settings", "profile", m.profile, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawSnapshot(m.screen, m.engine.Snapshot(), m.engine.HumanSide(), m.flash)

	dir := filepath.Join(os.Getenv("HOME"), ".pong", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.engine.Snapshot(), m.engine.HumanSide(), m.flash)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local session.
func Run(sess Session, cfg core.RuntimeConfig) error {
	model, err := NewModel(sess, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
