package starfall

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
)

// ScoreDisplay is the number shown in the HUD. With animation on it
// counts toward the real score instead of jumping.
type ScoreDisplay struct {
	displayed int
	target    int
	timer     float64
}

// Value is the number currently shown.
func (s *ScoreDisplay) Value() int { return s.displayed }

// Snap shows score immediately.
func (s *ScoreDisplay) Snap(score int) {
	s.displayed = score
	s.target = score
	s.timer = 0
}

// Update moves the display toward score.
func (s *ScoreDisplay) Update(score int, dt float64, cfg config.HUDConfig) {
	if !cfg.AnimateScore || cfg.AnimationDuration <= 0 {
		s.Snap(score)
		return
	}
	if score != s.target {
		s.target = score
		s.timer = cfg.AnimationDuration
	}
	if s.timer <= 0 {
		s.displayed = s.target
		return
	}
	s.timer -= dt
	if s.timer <= 0 {
		s.displayed = s.target
		return
	}
	progress := 1 - s.timer/cfg.AnimationDuration
	s.displayed = core.RoundToInt(core.Lerp(float64(s.displayed), float64(s.target), progress))
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ')

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.scoreDisplay.Value()), core.ColorBrightWhite)

	lives := g.health.Lives()
	if lives > 0 {
		hearts := strings.Repeat("♥", lives) + strings.Repeat("♡", max(0, g.health.MaxLives()-lives))
		dst.DrawTextCenteredColored(0, hearts, core.ColorBrightRed)
	}

	right := fmt.Sprintf("High: %d  x%.2f", g.highScore, g.currentDifficulty())
	if g.paused {
		right = "PAUSED  " + right
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorCyan)
}
