package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/profile"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Store     *storage.Store // Optional; scores are not saved without it
	Profile   profile.Profile
	SessionID string
	Config    core.RuntimeConfig
	Logger    *log.Logger
}

// GameModel runs one game with the info panel next to it.
// Ticks are driven by a frameDriver; once the game is over the driver stops
// and only a restart starts it again.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	profile    profile.Profile
	sessionID  string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	driver     frameDriver
	logger     *log.Logger
	width      int
	height     int
	best       int // Best stored score when the session started
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a game model and starts a fresh game.
func NewGameModel(game registry.Game, opts GameOptions) GameModel {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := GameModel{
		game:       game,
		store:      opts.Store,
		profile:    opts.Profile.WithDefaults(),
		sessionID:  opts.SessionID,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		driver:     newFrameDriver(cfg.TickRate),
		logger:     logger,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	fieldW, fieldH := m.playfieldSize()
	m.screen = core.NewScreen(fieldW, fieldH)

	if m.store != nil {
		if best, err := m.store.HighScore(game.ID()); err == nil {
			m.best = best
		} else {
			logger.Debug("could not load high score", "error", err)
		}
	}

	game.Reset(cfg)
	m.gameState = game.State()
	m.driver.Start()

	return m
}

// Init schedules the first tick.
func (m GameModel) Init() tea.Cmd {
	return m.driver.Next()
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(m.playfieldSize())
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
// Movement keys are queued for the next tick; restart and back act immediately
// because no ticks arrive once the game is over.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.driver.Stop()
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionRestart:
		if m.gameState.GameOver {
			return m.restart()
		}
		return m, nil
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			m.driver.Stop()
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.driver.Accept(msg) {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveScore()
		m.driver.Stop()
		return m, nil
	}

	return m, m.driver.Next()
}

// restart starts a fresh game with a new seed.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.inputFrame.Clear()

	m.driver.Start()
	return m, m.driver.Next()
}

// saveScore records the finished game once.
func (m *GameModel) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	score := m.gameState.Score
	m.best = max(m.best, score)

	if m.store == nil || score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		GameID:    m.game.ID(),
		Nickname:  m.profile.Nickname,
		SessionID: m.sessionID,
		Score:     score,
	})
	if err != nil {
		m.logger.Debug("could not save score", "game", m.game.ID(), "error", err)
	}
}

// playfieldSize returns the screen buffer size left after the info panel.
func (m GameModel) playfieldSize() (int, int) {
	return max(m.width-panelWidth, 1), max(m.height, 1)
}

// View renders the playfield and the info panel side by side.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if err := checkSize(m.width, m.height); err != nil {
		return fmt.Sprintf("\n  Terminal too small (%dx%d).\n  Resize to at least %dx%d.\n",
			m.width, m.height, MinWidth, MinHeight)
	}

	m.game.Render(m.screen)
	field := RenderScreen(m.screen)
	panel := renderPanel(m.panelInfo(), m.keyMapper.Keys(), m.height)

	return lipgloss.JoinHorizontal(lipgloss.Top, field, panel)
}

// panelInfo mirrors the current profile and score for the info panel.
func (m GameModel) panelInfo() PanelInfo {
	return PanelInfo{
		Nickname: m.profile.Nickname,
		Age:      m.profile.Age,
		Score:    m.gameState.Score,
		Best:     m.best,
		Paused:   m.gameState.Paused,
		Over:     m.gameState.GameOver,
	}
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Running reports whether ticks are still being scheduled.
func (m GameModel) Running() bool {
	return m.driver.Running()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
