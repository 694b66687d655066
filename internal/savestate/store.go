package savestate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSave is returned by Load when the save file does not exist.
var ErrNoSave = errors.New("savestate: no save file")

// Store reads and writes a single save file.
type Store struct {
	path string
}

// NewStore creates a store for the file at path. A leading ~ is expanded.
func NewStore(path string) *Store {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &Store{path: path}
}

// Path returns the save file location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a save file is present.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Load reads the save file. Volume keys missing from the file take their
// default values.
func (s *Store) Load() (GameState, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return GameState{}, ErrNoSave
	}
	if err != nil {
		return GameState{}, fmt.Errorf("savestate: read %s: %w", s.path, err)
	}

	state := GameState{Volumes: DefaultVolumes()}
	if err := json.Unmarshal(data, &state); err != nil {
		return GameState{}, fmt.Errorf("savestate: decode %s: %w", s.path, err)
	}
	if state.Asteroids == nil {
		state.Asteroids = []Object{}
	}
	if state.Stars == nil {
		state.Stars = []Object{}
	}
	state.Volumes = state.Volumes.Clamped()
	return state, nil
}

// Save writes the state atomically through a temp file and rename.
func (s *Store) Save(state GameState) error {
	if state.Asteroids == nil {
		state.Asteroids = []Object{}
	}
	if state.Stars == nil {
		state.Stars = []Object{}
	}

	data, err := json.MarshalIndent(state, "", "    ")
	if err != nil {
		return fmt.Errorf("savestate: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("savestate: create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".gamestate-*.tmp")
	if err != nil {
		return fmt.Errorf("savestate: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("savestate: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("savestate: close: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("savestate: replace %s: %w", s.path, err)
	}
	return nil
}

// Delete removes the save file. A missing file is not an error.
func (s *Store) Delete() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("savestate: delete %s: %w", s.path, err)
	}
	return nil
}

// Summary is what the main menu needs to know about the save.
type Summary struct {
	Exists      bool
	CanContinue bool
	HighScore   int
	Lives       int
	Score       int
}

// Summary reads the save file and reports menu-level information. An
// unreadable file is reported as absent.
func (s *Store) Summary() Summary {
	state, err := s.Load()
	if err != nil {
		return Summary{}
	}
	return Summary{
		Exists:      true,
		CanContinue: state.CanContinue(),
		HighScore:   state.HighScore,
		Lives:       state.PlayerLives,
		Score:       state.Score,
	}
}

// NewGame replaces the save with a fresh run. The previous high score is
// kept and the given volumes are stored.
func (s *Store) NewGame(lives int, volumes Volumes) (GameState, error) {
	fresh := NewGameState(lives)
	if prev, err := s.Load(); err == nil {
		fresh.HighScore = prev.HighScore
	} else if !errors.Is(err, ErrNoSave) {
		return GameState{}, err
	}
	fresh.Volumes = volumes.Clamped()

	if err := s.Save(fresh); err != nil {
		return GameState{}, err
	}
	return fresh, nil
}

// UpdateVolumes rewrites only the volume fields of an existing save. It
// does nothing when there is no save file.
func (s *Store) UpdateVolumes(volumes Volumes) error {
	state, err := s.Load()
	if errors.Is(err, ErrNoSave) {
		return nil
	}
	if err != nil {
		return err
	}
	state.Volumes = volumes.Clamped()
	return s.Save(state)
}
