package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starfall/internal/savestate"
)

const (
	volumeStep     = 0.05
	sliderWidth    = 30
	optionsBackRow = 5
)

var sliderLabels = [...]string{"Master", "Music", "Shooting", "Explosion", "Star collecting"}

// OptionsModel edits the five volume levels. Every change is visible
// through Volumes right away; the owner decides where to persist it.
type OptionsModel struct {
	volumes   savestate.Volumes
	cursor    int
	bar       progress.Model
	keyMapper *KeyMapper
	width     int
	height    int
	done      bool
	quitting  bool
}

// NewOptionsModel creates an options screen starting from v.
func NewOptionsModel(v savestate.Volumes, width, height int) OptionsModel {
	return OptionsModel{
		volumes: v.Clamped(),
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(sliderWidth),
			progress.WithoutPercentage(),
		),
		keyMapper: NewKeyMapper(),
		width:     width,
		height:    height,
	}
}

// Init initializes the options model.
func (m OptionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the options screen.
func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m OptionsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
	case MenuActionBack:
		m.done = true
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < optionsBackRow {
			m.cursor++
		}
	case MenuActionLeft:
		m.adjust(-volumeStep)
	case MenuActionRight:
		m.adjust(volumeStep)
	case MenuActionSelect:
		if m.cursor == optionsBackRow {
			m.done = true
		}
	}
	return m, nil
}

func (m *OptionsModel) adjust(delta float64) {
	if m.cursor >= optionsBackRow {
		return
	}
	p := m.level(m.cursor)
	*p = math.Round((*p+delta)/volumeStep) * volumeStep
	m.volumes = m.volumes.Clamped()
}

func (m *OptionsModel) level(i int) *float64 {
	switch i {
	case 0:
		return &m.volumes.Master
	case 1:
		return &m.volumes.Music
	case 2:
		return &m.volumes.Shooting
	case 3:
		return &m.volumes.Explosion
	default:
		return &m.volumes.StarCollecting
	}
}

// View renders the sliders.
func (m OptionsModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var rows strings.Builder
	for i, label := range sliderLabels {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}
		v := *m.level(i)
		fmt.Fprintf(&rows, "%s %s %3.0f%%\n",
			style.Render(fmt.Sprintf("%s%-16s", cursor, label)),
			m.bar.ViewAs(v),
			v*100,
		)
	}
	back := "  Back"
	if m.cursor == optionsBackRow {
		back = activeStyle.Render("> Back")
	}
	rows.WriteString("\n" + back)

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(rows.String())

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("O P T I O N S"),
		"",
		panel,
		"",
		dimStyle.Render("Up/Down: Select  |  Left/Right: Adjust  |  Esc: Back"),
	)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Volumes returns the levels as edited so far.
func (m OptionsModel) Volumes() savestate.Volumes {
	return m.volumes
}

// Done returns true once the user leaves the screen.
func (m OptionsModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user requested to quit.
func (m OptionsModel) IsQuitting() bool {
	return m.quitting
}
