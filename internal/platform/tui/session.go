package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/profile"
	"github.com/vovakirdan/tui-jumper/internal/registry"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// DefaultGameID is the game a session plays unless told otherwise.
const DefaultGameID = "jumper"

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Store     *storage.Store   // Optional score and profile database
	Profiles  profile.Store    // Defaults to Store, or an in-memory store without one
	Config    core.RuntimeConfig
	SessionID string           // Generated when empty
	GameID    string           // Defaults to DefaultGameID
	Preset    *profile.Profile // Skips the landing form for the first game
	Logger    *log.Logger
}

type sessionView int

const (
	viewLanding sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the flow landing -> game -> landing, with the
// scoreboard reachable from the landing screen. Local play and SSH
// sessions both run it.
type SessionModel struct {
	store     *storage.Store
	profiles  profile.Store
	config    core.RuntimeConfig
	sessionID string
	gameID    string
	logger    *log.Logger
	view      sessionView
	landing   LandingModel
	game      *GameModel
	scores    *ScoreboardModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	m := SessionModel{
		store:     opts.Store,
		profiles:  opts.Profiles,
		config:    opts.Config,
		sessionID: opts.SessionID,
		gameID:    opts.GameID,
		logger:    opts.Logger,
	}
	if m.profiles == nil {
		if m.store != nil {
			m.profiles = m.store
		} else {
			m.profiles = profile.NewMemory()
		}
	}
	if m.sessionID == "" {
		m.sessionID = profile.NewSessionID()
	}
	if m.gameID == "" {
		m.gameID = DefaultGameID
	}
	if m.logger == nil {
		m.logger = log.Default()
	}

	m.landing = NewLandingModel(m.config.ScreenW, m.config.ScreenH)

	if opts.Preset != nil {
		m.saveProfile(*opts.Preset)
		if game, err := m.newGame(); err == nil {
			m.game = game
			m.view = viewGame
		}
	}

	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.view == viewGame && m.game != nil {
		return m.game.Init()
	}
	return m.landing.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateLanding(msg)
	}
}

// updateLanding handles updates while the profile form is shown.
func (m SessionModel) updateLanding(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLanding, cmd := m.landing.Update(msg)
	if landing, ok := newLanding.(LandingModel); ok {
		m.landing = landing
	}

	switch {
	case m.landing.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.landing.WantsScoreboard():
		title := m.gameID
		if g, err := registry.Create(m.gameID); err == nil {
			title = g.Title()
		}
		scores := NewScoreboardModel(m.store, m.gameID, title, m.config.ScreenW, m.config.ScreenH)
		m.scores = &scores
		m.view = viewScores
		return m, nil

	case m.landing.Submitted():
		m.saveProfile(m.landing.Profile())
		game, err := m.newGame()
		if err != nil {
			m.landing = NewLandingModel(m.config.ScreenW, m.config.ScreenH)
			return m, m.landing.Init()
		}
		m.game = game
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while a game is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		if err := m.profiles.ClearProfile(m.sessionID); err != nil {
			m.logger.Warn("could not clear profile", "session", m.sessionID, "error", err)
		}
		m.game = nil
		return m.toLanding()
	}

	return m, cmd
}

// updateScores handles updates while the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = &scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.scores = nil
		return m.toLanding()
	}

	return m, cmd
}

// toLanding shows a fresh profile form.
func (m SessionModel) toLanding() (tea.Model, tea.Cmd) {
	m.landing = NewLandingModel(m.config.ScreenW, m.config.ScreenH)
	m.view = viewLanding
	return m, m.landing.Init()
}

// newGame creates the game model, reading the profile stored for this session.
func (m SessionModel) newGame() (*GameModel, error) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", m.gameID, "error", err)
		return nil, err
	}

	gm := NewGameModel(game, GameOptions{
		Store:     m.store,
		Profile:   profile.Resolve(m.profiles, m.sessionID),
		SessionID: m.sessionID,
		Config:    m.config,
		Logger:    m.logger,
	})
	return &gm, nil
}

// saveProfile stores the profile entered for this session.
func (m SessionModel) saveProfile(p profile.Profile) {
	if err := m.profiles.SaveProfile(m.sessionID, p); err != nil {
		m.logger.Warn("could not save profile", "session", m.sessionID, "error", err)
	}
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	default:
		return m.landing.View()
	}
}

// SessionID returns the identifier profiles and scores are stored under.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Run starts a local session in the alternate screen.
func Run(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
