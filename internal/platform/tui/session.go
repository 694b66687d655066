package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/starfall/internal/core"
)

// StartMode selects the first screen of a session.
type StartMode int

const (
	StartMenu StartMode = iota
	StartContinue
	StartNewGame
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenOptions
	screenScores
)

// SessionModel manages the full flow: menu -> game -> menu, plus the
// options and scoreboard screens. It is the top-level model for both
// local play and SSH sessions.
type SessionModel struct {
	svc       Services
	config    core.RuntimeConfig
	sessionID string
	screen    sessionScreen
	menu      MenuModel
	game      *GameModel
	options   OptionsModel
	scores    ScoreboardModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(svc Services, cfg core.RuntimeConfig, start StartMode) SessionModel {
	svc = svc.withDefaults()
	sessionID := uuid.NewString()
	svc.Logger = svc.Logger.With("session", sessionID[:8])
	svc.Audio.SetVolumes(svc.initialVolumes())

	m := SessionModel{
		svc:       svc,
		config:    cfg,
		sessionID: sessionID,
	}

	switch start {
	case StartContinue:
		m.startGame(true)
	case StartNewGame:
		m.startGame(false)
	default:
		m.openMenu()
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	m.svc.Audio.StartMusic()
	if m.screen == screenGame && m.game != nil {
		return m.game.Init()
	}
	return nil
}

func (m *SessionModel) openMenu() {
	m.screen = screenMenu
	m.game = nil
	m.menu = NewMenuModel(m.svc.summary(), m.svc.savedHighScore(), m.config.ScreenW, m.config.ScreenH)
}

func (m *SessionModel) startGame(resume bool) {
	gm := NewGameModel(m.svc, m.config, resume)
	m.game = &gm
	m.screen = screenGame
	m.svc.Logger.Info("game started", "resume", resume, "owner", m.svc.Owner)
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenOptions:
		return m.updateOptions(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Selected() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceContinue:
		m.startGame(true)
		return m, m.game.Init()

	case ChoiceNewGame:
		m.startGame(false)
		return m, m.game.Init()

	case ChoiceOptions:
		m.options = NewOptionsModel(m.svc.Audio.Volumes(), m.config.ScreenW, m.config.ScreenH)
		m.screen = screenOptions
		return m, nil

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.svc.Scores, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, nil
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
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
		m.openMenu()
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.options.Update(msg)
	if opts, ok := updated.(OptionsModel); ok {
		m.options = opts
	}

	if v := m.options.Volumes(); v != m.svc.Audio.Volumes() {
		m.svc.Audio.SetVolumes(v)
		m.svc.persistVolumes(v)
	}

	if m.options.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.options.Done() {
		m.openMenu()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scores.Update(msg)
	if sb, ok := updated.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.openMenu()
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenOptions:
		return m.options.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// SessionID returns the unique ID of this session.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Run starts a local session and blocks until the player quits. started,
// when set, receives the program before it runs so the caller can send it
// messages such as config reloads.
func Run(svc Services, cfg core.RuntimeConfig, start StartMode, started func(*tea.Program)) error {
	model := NewSessionModel(svc, cfg, start)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if started != nil {
		started(p)
	}

	_, err := p.Run()
	return err
}
