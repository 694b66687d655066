package tui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/savestate"
)

// overlay is what, if anything, is drawn over the running game.
type overlay int

const (
	overlayNone overlay = iota
	overlayPause
	overlayOptions
	overlayGameOver
)

const (
	itemResume   = "Resume"
	itemOptions  = "Options"
	itemMainMenu = "Main Menu"
	itemQuit     = "Quit"
	itemRetry    = "Retry"
)

var (
	pauseItems    = []string{itemResume, itemOptions, itemMainMenu, itemQuit}
	gameOverItems = []string{itemRetry, itemMainMenu, itemQuit}
)

// GameModel runs one Starfall game with its pause, options and game-over
// overlays.
type GameModel struct {
	game       *starfall.Game
	screen     *core.Screen
	svc        Services
	config     core.RuntimeConfig
	input      *HoldInput
	keyMapper  *KeyMapper
	keys       GameKeyMap
	now        func() time.Time
	tickGen    uint64
	overlay    overlay
	cursor     int
	options    OptionsModel
	musicOff   bool
	scoreSaved bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. With resume set the saved game is
// loaded when it can continue; otherwise a new game replaces the save.
func NewGameModel(svc Services, cfg core.RuntimeConfig, resume bool) GameModel {
	svc = svc.withDefaults()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game := starfall.New()
	game.Reset(cfg)

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		svc:       svc,
		config:    cfg,
		input:     NewHoldInput(holdWindow(game)),
		keyMapper: NewKeyMapper(),
		keys:      DefaultGameKeyMap(),
		now:       time.Now,
		tickGen:   nextTickGen(),
	}
	m.startRun(resume)
	return m
}

func holdWindow(g *starfall.Game) time.Duration {
	return time.Duration(g.Config().Input.HoldMS) * time.Millisecond
}

// startRun loads the save or starts over, keeping the high score.
func (m *GameModel) startRun(resume bool) {
	vols := m.svc.Audio.Volumes()
	saves := m.svc.Saves

	if resume && saves != nil {
		state, err := saves.Load()
		switch {
		case err == nil && state.CanContinue():
			m.game.Restore(state)
			m.svc.Audio.SetVolumes(m.game.Volumes())
			m.svc.Logger.Info("save loaded",
				"lives", state.PlayerLives,
				"score", state.Score,
				"asteroids", len(state.Asteroids),
			)
			return
		case err == nil:
			m.svc.Logger.Info("saved game is over, starting a new one")
		case errors.Is(err, savestate.ErrNoSave):
			m.svc.Logger.Info("no save found, starting a new game")
		default:
			m.svc.Logger.Warn("could not load save, starting a new game", "error", err)
		}
	}

	if saves != nil {
		state, err := saves.NewGame(m.game.Config().Player.MaxLives, vols)
		if err != nil {
			m.svc.Logger.Warn("could not reset save file", "error", err)
		} else {
			m.game.Restore(state)
		}
	}
	m.game.SetVolumes(vols)
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case ConfigReloadMsg:
		return m.handleConfigReload(msg)

	case TickMsg:
		if msg.gen != m.tickGen {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayOptions:
		return m.handleOptionsKey(msg)
	case overlayPause, overlayGameOver:
		return m.handleMenuKey(msg)
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch {
	case action == core.ActionPause:
		m.openPause()
	case msg.String() == "m":
		m.toggleMusic()
	case action != core.ActionNone:
		m.input.Press(action, m.now())
	}
	return m, nil
}

func (m GameModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.menuItems()

	if m.overlay == overlayGameOver && msg.String() == "r" {
		return m.selectItem(itemRetry)
	}
	if m.overlay == overlayPause && msg.String() == "p" {
		return m.selectItem(itemResume)
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return m.quit()
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return m.selectItem(items[m.cursor])
	case MenuActionBack:
		if m.overlay == overlayPause {
			return m.selectItem(itemResume)
		}
	}
	return m, nil
}

func (m GameModel) handleOptionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, _ := m.options.Update(msg)
	if opts, ok := updated.(OptionsModel); ok {
		m.options = opts
	}

	if v := m.options.Volumes(); v != m.svc.Audio.Volumes() {
		m.svc.Audio.SetVolumes(v)
		m.game.SetVolumes(v)
		m.svc.persistVolumes(v)
	}

	if m.options.IsQuitting() {
		return m.quit()
	}
	if m.options.Done() {
		m.overlay = overlayPause
		m.cursor = 1
	}
	return m, nil
}

func (m GameModel) menuItems() []string {
	if m.overlay == overlayGameOver {
		return gameOverItems
	}
	return pauseItems
}

func (m GameModel) selectItem(item string) (tea.Model, tea.Cmd) {
	switch item {
	case itemResume:
		m.overlay = overlayNone
		m.game.SetPaused(false)
		if !m.musicOff {
			m.svc.Audio.PauseMusic(false)
		}

	case itemOptions:
		m.options = NewOptionsModel(m.svc.Audio.Volumes(), m.config.ScreenW, m.config.ScreenH)
		m.overlay = overlayOptions

	case itemRetry:
		m.game.Retry()
		m.overlay = overlayNone
		m.cursor = 0
		m.scoreSaved = false
		m.input.Reset()
		m.svc.Logger.Info("retry", "high_score", m.game.HighScore())

	case itemMainMenu:
		m.svc.saveGame(m.game, "main menu")
		if !m.musicOff {
			m.svc.Audio.PauseMusic(false)
		}
		m.backToMenu = true

	case itemQuit:
		return m.quit()
	}
	return m, nil
}

func (m *GameModel) openPause() {
	if m.game.GameOver() {
		return
	}
	m.game.SetPaused(true)
	m.input.Reset()
	m.overlay = overlayPause
	m.cursor = 0
	m.svc.Audio.PauseMusic(true)
}

func (m *GameModel) toggleMusic() {
	m.musicOff = !m.musicOff
	if m.musicOff {
		m.svc.Audio.PauseMusic(true)
	} else {
		m.svc.Audio.StartMusic()
	}
}

func (m GameModel) quit() (tea.Model, tea.Cmd) {
	m.svc.saveGame(m.game, "quit")
	m.quitting = true
	return m, tea.Quit
}

// handleMouse aims with the pointer and fires while the left button is
// down.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.input.Aim(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.overlay == overlayNone {
			m.input.MouseFire(true)
		}
	case tea.MouseActionRelease:
		m.input.MouseFire(false)
	}
	return m, nil
}

// handleResize re-fits the game to the new window. The world is kept.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	updated, _ := m.options.Update(msg)
	if opts, ok := updated.(OptionsModel); ok {
		m.options = opts
	}
	return m, nil
}

func (m GameModel) handleConfigReload(msg ConfigReloadMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.svc.Logger.Warn("config reload failed, keeping current settings", "error", msg.Err)
		return m, nil
	}
	m.game.ApplyConfig(msg.Config)
	m.input.SetWindow(holdWindow(m.game))
	m.svc.Logger.Info("config reloaded")
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	if m.overlay == overlayNone {
		frame = m.input.Frame(now)
	}

	switch m.overlay {
	case overlayNone, overlayGameOver:
		m.game.Step(frame)
	}

	m.playEvents()

	if m.game.TakeSaveRequest() {
		m.svc.saveGame(m.game, "autosave")
	}

	if m.game.GameOver() && !m.scoreSaved {
		m.svc.recordScore(m.game.Score(), m.game.Elapsed())
		m.svc.saveGame(m.game, "game over")
		m.scoreSaved = true
		m.overlay = overlayGameOver
		m.cursor = 0
		m.input.Reset()
	}

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// playEvents turns game events into sounds and log lines.
func (m GameModel) playEvents() {
	log := m.svc.Logger
	for _, ev := range m.game.DrainEvents() {
		switch ev.Kind {
		case starfall.EventShoot:
			m.svc.Audio.Play(audio.SoundShoot, 1)
		case starfall.EventExplosion:
			m.svc.Audio.Play(audio.SoundExplosion, ev.Scale)
		case starfall.EventStarCollected:
			m.svc.Audio.Play(audio.SoundCollect, 1)
		case starfall.EventReinforcedSpawn:
			log.Debug("reinforced asteroid", "size", ev.Scale, "bonus_health", ev.Value)
		case starfall.EventPlayerHit:
			log.Debug("player hit", "lives", m.game.Lives())
		case starfall.EventPlayerRespawned:
			log.Debug("player respawned")
		case starfall.EventGameOver:
			log.Info("game over", "score", m.game.Score(), "high_score", m.game.HighScore())
		}
	}
}

// View renders the game and any overlay.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.overlay == overlayOptions {
		return m.options.View()
	}

	m.game.Render(m.screen)

	h := m.screen.Height()
	switch m.overlay {
	case overlayPause:
		drawMenuPanel(m.screen, h/2-4, "PAUSED", pauseItems, m.cursor)
		m.screen.DrawTextCenteredColored(h-1, m.helpLine(), core.ColorGray)
	case overlayGameOver:
		drawMenuPanel(m.screen, h/2+1, "", gameOverItems, m.cursor)
	}

	return RenderScreen(m.screen)
}

// helpLine lists the in-game bindings as plain text.
func (m GameModel) helpLine() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// Game returns the running game.
func (m GameModel) Game() *starfall.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
