package tui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/savestate"
	"github.com/vovakirdan/starfall/internal/storage"
)

// Services bundles what a session needs beyond the game itself. Scores
// and Saves may be nil, in which case that kind of persistence is off.
type Services struct {
	Scores *storage.Store
	Saves  *savestate.Store
	Audio  *audio.Manager
	Logger *log.Logger
	Owner  string
}

// withDefaults fills the optional fields so callers never nil-check them.
func (s Services) withDefaults() Services {
	if s.Audio == nil {
		s.Audio = audio.NewManager(false)
	}
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.Owner == "" {
		s.Owner = "local"
	}
	return s
}

// initialVolumes picks the starting volume levels: the save file wins,
// then stored preferences, then the defaults.
func (s Services) initialVolumes() savestate.Volumes {
	if s.Saves != nil {
		state, err := s.Saves.Load()
		if err == nil {
			return state.Volumes
		}
		if !errors.Is(err, savestate.ErrNoSave) {
			s.Logger.Warn("could not read save file", "path", s.Saves.Path(), "error", err)
		}
	}
	if s.Scores != nil {
		v, err := s.Scores.LoadVolumes(s.Owner)
		if err != nil {
			s.Logger.Warn("could not load volume preferences", "error", err)
		}
		return v
	}
	return savestate.DefaultVolumes()
}

// persistVolumes writes new levels to the preferences table and the save.
func (s Services) persistVolumes(v savestate.Volumes) {
	if s.Scores != nil {
		if err := s.Scores.SaveVolumes(s.Owner, v); err != nil {
			s.Logger.Warn("could not store volume preferences", "error", err)
		}
	}
	if s.Saves != nil {
		if err := s.Saves.UpdateVolumes(v); err != nil {
			s.Logger.Warn("could not update save volumes", "error", err)
		}
	}
}

// saveGame writes the running game to the save file.
func (s Services) saveGame(g *starfall.Game, reason string) {
	if s.Saves == nil {
		return
	}
	state := g.Capture(time.Now())
	if err := s.Saves.Save(state); err != nil {
		s.Logger.Error("save failed", "reason", reason, "error", err)
		return
	}
	s.Logger.Debug("game saved", "reason", reason, "lives", state.PlayerLives, "score", state.Score)
}

// recordScore adds a finished run to the score table.
func (s Services) recordScore(score int, elapsed float64) {
	if s.Scores == nil || score <= 0 {
		return
	}
	d := time.Duration(elapsed * float64(time.Second))
	if _, err := s.Scores.SaveScore(starfall.GameID, s.Owner, score, d); err != nil {
		s.Logger.Warn("could not record score", "error", err)
		return
	}
	s.Logger.Info("score recorded", "player", s.Owner, "score", score, "duration", d.Round(time.Second))
}

// summary reports what the main menu shows about the save.
func (s Services) summary() savestate.Summary {
	if s.Saves == nil {
		return savestate.Summary{}
	}
	return s.Saves.Summary()
}

// savedHighScore returns the best score known to either store.
func (s Services) savedHighScore() int {
	best := s.summary().HighScore
	if s.Scores != nil {
		if hs, err := s.Scores.HighScore(starfall.GameID); err == nil {
			best = max(best, hs)
		}
	}
	return best
}
