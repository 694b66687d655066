package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/starfall/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawTextColored(0, 0, "ab", core.ColorYellow)
	s.DrawText(0, 2, "xyz")

	out := RenderScreen(s)
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "xyz")
}

func TestDrawMenuPanel(t *testing.T) {
	s := core.NewScreen(40, 12)
	drawMenuPanel(s, 2, "PAUSED", []string{"Resume", "Quit"}, 1)

	assert.Contains(t, s.Row(3), "PAUSED")
	assert.Contains(t, s.Row(5), "  Resume")
	assert.Contains(t, s.Row(6), "> Quit")

	x := (40-14)/2 + 3 // box left edge plus border and padding
	assert.Equal(t, '>', s.GetCell(x, 6).Rune)
	assert.Equal(t, core.ColorBrightYellow, s.GetCell(x, 6).Color)
	assert.Equal(t, core.ColorWhite, s.GetCell(x+2, 5).Color)
}

func TestDrawMenuPanelStaysOnScreen(t *testing.T) {
	s := core.NewScreen(40, 12)
	drawMenuPanel(s, 100, "", []string{"Retry", "Main Menu", "Quit"}, 0)

	// Without a title the box is six rows tall and its bottom lands on
	// the last row.
	assert.Contains(t, s.Row(11), "└")
	assert.Contains(t, s.Row(7), "> Retry")
	assert.Contains(t, s.Row(9), "  Quit")
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "   hi", centerText("hi", 8))
	assert.Equal(t, "toolong", centerText("toolong", 4))
}
