package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/savestate"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Inspect or reset the save file",
}

var saveShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a summary of the save file",
	Args:  cobra.NoArgs,
	RunE:  runSaveShow,
}

var saveResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the save file, including the saved high score",
	Args:  cobra.NoArgs,
	RunE:  runSaveReset,
}

func init() {
	saveCmd.AddCommand(saveShowCmd)
	saveCmd.AddCommand(saveResetCmd)
}

func localSaveStore() *savestate.Store {
	cfg, err := config.Load("")
	if err != nil {
		cfg = config.DefaultConfig()
	}
	return saveStore(cfg)
}

func runSaveShow(_ *cobra.Command, _ []string) error {
	store := localSaveStore()
	state, err := store.Load()
	if errors.Is(err, savestate.ErrNoSave) {
		fmt.Printf("No save file at %s\n", store.Path())
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Save file: %s\n", store.Path())
	fmt.Printf("Saved:     %s\n", state.SaveTime.Format("2006-01-02 15:04:05"))
	fmt.Printf("Lives:     %d\n", state.PlayerLives)
	fmt.Printf("Score:     %d\n", state.Score)
	fmt.Printf("High:      %d\n", state.HighScore)
	fmt.Printf("Asteroids: %d\n", len(state.Asteroids))
	fmt.Printf("Stars:     %d\n", len(state.Stars))
	if state.Player != nil {
		fmt.Printf("Player:    (%.2f, %.2f)\n", state.Player.PosX, state.Player.PosY)
	}
	fmt.Printf("Volumes:   master %.2f  music %.2f  shooting %.2f  explosion %.2f  stars %.2f\n",
		state.Master, state.Music, state.Shooting, state.Explosion, state.StarCollecting)
	if state.CanContinue() {
		fmt.Println("Run 'starfall play' to continue.")
	} else {
		fmt.Println("The saved run is over. 'starfall play' starts a new one.")
	}
	return nil
}

func runSaveReset(_ *cobra.Command, _ []string) error {
	store := localSaveStore()
	if !store.Exists() {
		fmt.Printf("No save file at %s\n", store.Path())
		return nil
	}
	if err := store.Delete(); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", store.Path())
	return nil
}
