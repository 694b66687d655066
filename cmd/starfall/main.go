// starfall is a terminal arcade shooter: dodge and shoot falling
// asteroids, collect stars and chase the high score.
//
// Usage:
//
//	starfall play              - Play, continuing the saved run if there is one
//	starfall menu              - Start at the main menu
//	starfall scores            - Show high scores
//	starfall save show|reset   - Inspect or delete the save file
//	starfall serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.starfall/scores.db)
//	--save-dir <path>  - Directory of the save file (default: ~/.starfall)
//	--log <path>       - Log file, empty to disable (default: ~/.starfall/starfall.log)
//	--mute             - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagSaveDir  string
	flagLogPath  string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - shoot falling asteroids in your terminal",
	Long: `Starfall is a terminal arcade shooter. Asteroids fall faster and
tougher as time goes on; shoot them, collect the stars they drop and
keep your three lives as long as you can.

Available commands:
  play     - Play (continues the saved run unless --new)
  menu     - Main menu with continue, options and high scores
  scores   - View high scores
  save     - Show or reset the save file
  serve    - Start SSH server for remote play

Examples:
  starfall play
  starfall play --new --difficulty hard
  starfall menu --mute
  starfall serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.starfall/scores.db", "Path to scores database")
	pf.StringVar(&flagSaveDir, "save-dir", "~/.starfall", "Directory holding the save file")
	pf.StringVar(&flagLogPath, "log", "~/.starfall/starfall.log", "Log file path (empty disables logging)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound effects and music")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(serveCmd)
}
