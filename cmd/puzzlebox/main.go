// puzzlebox is a collection of casual puzzle games played in the terminal.
//
// Usage:
//
//	puzzlebox list              - List available games
//	puzzlebox play <game>       - Play a game
//	puzzlebox menu              - Start menu to pick games interactively
//	puzzlebox serve             - Start SSH server for remote play
//	puzzlebox scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default from config)
//	--seed <value>   - Set RNG seed for reproducible games
//	--db <path>      - Set database path (default from config)
//	--config <path>  - Path to an app config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkrasnov/puzzlebox/internal/config"
	"github.com/dkrasnov/puzzlebox/internal/platform/tui"

	// Import games to register them
	_ "github.com/dkrasnov/puzzlebox/internal/games/g2048"
	_ "github.com/dkrasnov/puzzlebox/internal/games/memory"
	_ "github.com/dkrasnov/puzzlebox/internal/games/wordguess"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string

	// Loaded app config, available to all commands
	appCfg config.AppConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzlebox",
	Short: "Puzzlebox - casual puzzle games in your terminal",
	Long: `Puzzlebox is a terminal-based collection of casual puzzle games.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  puzzlebox list
  puzzlebox play 2048
  puzzlebox menu
  puzzlebox serve --ssh :2222
  puzzlebox scores 2048`,
	PersistentPreRunE: loadConfig,
}

// loadConfig loads the app config and lets explicit flags win over it.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	appCfg = cfg

	tui.SetTheme(appCfg.Display.Theme)

	if !cmd.Flags().Changed("fps") {
		flagFPS = appCfg.Display.TickRate
	}
	if !cmd.Flags().Changed("db") {
		flagDBPath = appCfg.Database.Path
	}
	return nil
}

func init() {
	defaults := config.DefaultAppConfig()

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", defaults.Display.TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaults.Database.Path, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to app config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
