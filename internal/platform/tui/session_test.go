package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionUpdate(t *testing.T, m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		sm, ok := next.(SessionModel)
		require.True(t, ok, "Update returned %T", next)
		m = sm
	}
	return m, cmd
}

func TestSessionMenuWithoutSave(t *testing.T) {
	m := NewSessionModel(testServices(t), testRuntime(), StartMenu)

	assert.Equal(t, screenMenu, m.screen)
	assert.Equal(t, []MenuChoice{ChoiceNewGame, ChoiceOptions, ChoiceScores, ChoiceQuit}, m.menu.Items())
	assert.NotEmpty(t, m.SessionID())
	assert.Contains(t, m.View(), "High Score: 0")
}

func TestSessionNewGameAndBack(t *testing.T) {
	m := NewSessionModel(testServices(t), testRuntime(), StartMenu)

	m, cmd := sessionUpdate(t, m, keyMsg("enter"))
	require.Equal(t, screenGame, m.screen)
	assert.NotNil(t, cmd, "game starts its tick loop")

	m, _ = sessionUpdate(t, m, keyMsg("esc"), keyMsg("down"), keyMsg("down"), keyMsg("enter"))
	require.Equal(t, screenMenu, m.screen)
	assert.Nil(t, m.game)
	assert.Equal(t, ChoiceContinue, m.menu.Items()[0], "saved run can be continued")
	assert.Contains(t, m.View(), "Saved run")

	m, _ = sessionUpdate(t, m, keyMsg("enter"))
	assert.Equal(t, screenGame, m.screen)
	assert.Equal(t, 3, m.game.Game().Lives())
}

func TestSessionStartModes(t *testing.T) {
	svc := testServices(t)
	m := NewSessionModel(svc, testRuntime(), StartNewGame)
	assert.Equal(t, screenGame, m.screen)
	assert.True(t, svc.Saves.Exists())

	m = NewSessionModel(svc, testRuntime(), StartContinue)
	assert.Equal(t, screenGame, m.screen)
	assert.NotNil(t, m.Init())
}

func TestSessionOptions(t *testing.T) {
	m := NewSessionModel(testServices(t), testRuntime(), StartMenu)

	m, _ = sessionUpdate(t, m, keyMsg("down"), keyMsg("enter"))
	require.Equal(t, screenOptions, m.screen)
	assert.Contains(t, m.View(), "Master")

	m, _ = sessionUpdate(t, m, keyMsg("left"))
	assert.InDelta(t, 0.95, m.svc.Audio.Volumes().Master, 1e-9)

	m, _ = sessionUpdate(t, m, keyMsg("esc"))
	assert.Equal(t, screenMenu, m.screen)
}

func TestSessionScoresWithoutStorage(t *testing.T) {
	m := NewSessionModel(testServices(t), testRuntime(), StartMenu)

	m, _ = sessionUpdate(t, m, keyMsg("down"), keyMsg("down"), keyMsg("enter"))
	require.Equal(t, screenScores, m.screen)
	assert.Contains(t, m.View(), "Score storage is unavailable.")

	m, _ = sessionUpdate(t, m, keyMsg("esc"))
	assert.Equal(t, screenMenu, m.screen)
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(testServices(t), testRuntime(), StartMenu)

	m, cmd := sessionUpdate(t, m, keyMsg("q"))
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestSessionResizeReachesMenu(t *testing.T) {
	m := NewSessionModel(testServices(t), testRuntime(), StartMenu)

	m, _ = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, m.config.ScreenW)

	m, _ = sessionUpdate(t, m, keyMsg("enter"))
	assert.Equal(t, 100, m.game.screen.Width())
}
