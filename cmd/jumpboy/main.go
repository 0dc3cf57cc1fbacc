// jumpboy is a one-button terminal platformer: jump over rolling balls or
// stomp them until the stage clock runs out.
//
// Usage:
//
//	jumpboy play             - Play in this terminal
//	jumpboy list             - List the registered game variants
//	jumpboy scores           - Browse recorded runs
//	jumpboy serve            - Start SSH server for remote play
//	jumpboy sim              - Run the simulation headless
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: from config, 30)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--config <path>    - Use a custom stage table
//	--mode <mode>      - normal or hard
//	--stage <n>        - Start from stage n (1-based)
//	--log-file <path>  - Write debug logs to a file
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumpboy/internal/config"
	"github.com/vovakirdan/jumpboy/internal/games/jumpboy"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagMode    string
	flagStage   int
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumpboy",
	Short: "Jump Boy - a one-button platformer in your terminal",
	Long: `Jump Boy is a side-scrolling arcade platformer played with a single
button. Jump over the rolling balls or land on them for points, and stay
alive until the stage timer runs out.

Available commands:
  play     - Play in this terminal
  list     - Show the game variants
  scores   - View recorded runs
  serve    - Start SSH server for remote play
  sim      - Run the simulation without a terminal

Examples:
  jumpboy play
  jumpboy play --mode hard --stage 5
  jumpboy serve --ssh :2222
  jumpboy sim --frames 3000 --seed 7`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom stage table YAML")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "normal", "Game mode: normal or hard")
	rootCmd.PersistentFlags().IntVar(&flagStage, "stage", 0, "Start stage, 1-based (0 = saved level)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// logOut is where the game logger writes. The terminal is owned by the
// alt screen while playing, so logs go nowhere unless --log-file is set.
var logOut io.Writer = io.Discard

func setupLogging(_ *cobra.Command, _ []string) error {
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logOut = f
	}

	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumpboy",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	jumpboy.SetLogger(logger)
	return nil
}

// gameID maps --mode to a registered game.
func gameID() (string, error) {
	switch flagMode {
	case "", "normal":
		return jumpboy.GameID, nil
	case "hard":
		return jumpboy.HardGameID, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want normal or hard)", flagMode)
	}
}

// applyGameFlags pushes the stage table flags into the game package before
// a game is created.
func applyGameFlags() {
	jumpboy.SetConfigPath(flagConfig)
	jumpboy.SetStartStage(flagStage)
}

// tickRate is --fps, or the fps of the stage table when the flag is unset,
// so the terminal loop and the game clock agree.
func tickRate() int {
	if flagFPS > 0 {
		return flagFPS
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.DefaultJumpBoyConfig().FPS
	}
	return cfg.FPS
}
