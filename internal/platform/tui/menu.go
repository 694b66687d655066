package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starfall/internal/savestate"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceContinue
	ChoiceNewGame
	ChoiceOptions
	ChoiceScores
	ChoiceQuit
)

var choiceLabels = map[MenuChoice]string{
	ChoiceContinue: "Continue",
	ChoiceNewGame:  "New Game",
	ChoiceOptions:  "Options",
	ChoiceScores:   "High Scores",
	ChoiceQuit:     "Quit",
}

func (c MenuChoice) String() string {
	if s, ok := choiceLabels[c]; ok {
		return s
	}
	return "None"
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuChoice
	cursor    int
	width     int
	height    int
	summary   savestate.Summary
	highScore int
	keyMapper *KeyMapper
	selected  MenuChoice
}

// NewMenuModel creates the main menu. Continue is offered only when the
// save still has lives left.
func NewMenuModel(summary savestate.Summary, highScore, width, height int) MenuModel {
	items := make([]MenuChoice, 0, 5)
	if summary.CanContinue {
		items = append(items, ChoiceContinue)
	}
	items = append(items, ChoiceNewGame, ChoiceOptions, ChoiceScores, ChoiceQuit)

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		summary:   summary,
		highScore: max(highScore, summary.HighScore),
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.selected = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = m.items[m.cursor]
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("*  S T A R F A L L  *"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(infoStyle.Render(fmt.Sprintf("High Score: %d", m.highScore)), m.width))
	b.WriteString("\n")
	if m.summary.CanContinue {
		saved := fmt.Sprintf("Saved run: score %d, %d lives", m.summary.Score, m.summary.Lives)
		b.WriteString(centerText(dimStyle.Render(saved), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		line := "  " + item.String()
		if i == m.cursor {
			line = activeStyle.Render("> " + item.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Items returns the entries shown.
func (m MenuModel) Items() []MenuChoice {
	return m.items
}
