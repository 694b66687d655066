package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/starfall/internal/audio"
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/savestate"
	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// openLogger opens the log file. An empty path discards everything.
func openLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "starfall",
		Level:           lvl,
	})
	return logger, func() { f.Close() }, nil
}

// openScores opens the score database. On failure the game runs without
// score history.
func openScores(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// saveStore returns the store for the local save file.
func saveStore(cfg config.StarfallConfig) *savestate.Store {
	return savestate.NewStore(filepath.Join(expandHome(flagSaveDir), cfg.Save.FileName))
}

// loadConfig loads the config the game will use and checks the preset.
func loadConfig() (config.StarfallConfig, config.DifficultyPreset, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.StarfallConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, preset, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// watchedConfigPath returns the file to hot-reload: the --config file, or
// the user config when it exists.
func watchedConfigPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	dir := config.UserDir()
	if dir == "" {
		return ""
	}
	path := filepath.Join(dir, "configs", config.FileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}

// runLocal runs a local session starting at the given screen.
func runLocal(ctx context.Context, start tui.StartMode) error {
	logger, closeLog, err := openLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}
	starfall.SetConfigPath(flagConfig)
	starfall.SetDifficultyPreset(string(preset))

	store := openScores(logger)
	if store != nil {
		defer store.Close()
	}

	snd := audio.NewManager(!flagMute)
	if err := snd.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	defer snd.Close()

	svc := tui.Services{
		Scores: store,
		Saves:  saveStore(cfg),
		Audio:  snd,
		Logger: logger,
		Owner:  currentUser(),
	}

	var program atomic.Pointer[tea.Program]
	if path := watchedConfigPath(); path != "" {
		watcher, err := config.NewWatcher(path, preset, func(c config.StarfallConfig, err error) {
			if p := program.Load(); p != nil {
				p.Send(tui.ConfigReloadMsg{Config: c, Err: err})
			}
		})
		if err != nil {
			logger.Warn("config hot reload disabled", "error", err)
		} else {
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			if err := watcher.Start(ctx); err != nil {
				logger.Warn("config hot reload disabled", "error", err)
			} else {
				logger.Info("watching config", "path", path)
			}
			defer watcher.Stop()
		}
	}

	logger.Info("starting", "save", svc.Saves.Path(), "sound", snd.Active(), "preset", preset)
	runErr := tui.Run(svc, runtimeConfig(), start, func(p *tea.Program) {
		program.Store(p)
	})
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
